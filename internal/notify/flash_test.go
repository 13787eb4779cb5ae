package notify_test

import (
	"testing"

	"github.com/davargas/usuario-crud/internal/domain"
	"github.com/davargas/usuario-crud/internal/notify"
)

func TestFlash_Notify(t *testing.T) {
	f := notify.New()

	f.Notify("first", domain.CategoryRegistration)
	f.Notify("second", domain.CategoryLogin)
	f.Notify("third", domain.CategoryRegistration)

	got := f.Messages(domain.CategoryRegistration)
	if len(got) != 2 {
		t.Fatalf("expected 2 registration messages, got %d", len(got))
	}
	if got[0] != "first" || got[1] != "third" {
		t.Fatalf("expected messages in emission order, got %v", got)
	}

	if all := f.All(); len(all) != 3 {
		t.Fatalf("expected 3 messages total, got %d", len(all))
	}
}

func TestFlash_Messages_EmptyCategory(t *testing.T) {
	f := notify.New()
	f.Notify("only login", domain.CategoryLogin)

	if got := f.Messages(domain.CategoryUpdate); len(got) != 0 {
		t.Fatalf("expected no update messages, got %v", got)
	}
}

func TestFlash_Reset(t *testing.T) {
	f := notify.New()
	f.Notify("message", domain.CategoryUpdate)
	f.Reset()

	if all := f.All(); len(all) != 0 {
		t.Fatalf("expected no messages after Reset, got %v", all)
	}
}
