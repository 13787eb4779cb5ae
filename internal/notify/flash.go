// Package notify provides an in-memory implementation of domain.Notifier.
// The web layer substitutes its own session-backed flash storage; this one
// serves tests and any caller that wants to inspect messages directly.
package notify

import "github.com/davargas/usuario-crud/internal/domain"

// Message is one recorded notification.
type Message struct {
	Text     string
	Category string
}

// Flash records user-facing messages for a single request cycle.
// It is not safe for concurrent use; create one per request.
type Flash struct {
	messages []Message
}

var _ domain.Notifier = (*Flash)(nil)

// New creates an empty Flash recorder.
func New() *Flash {
	return &Flash{}
}

// Notify records a message under the given category.
func (f *Flash) Notify(message, category string) {
	f.messages = append(f.messages, Message{Text: message, Category: category})
}

// Messages returns the texts recorded under category, in emission order.
func (f *Flash) Messages(category string) []string {
	var out []string
	for _, m := range f.messages {
		if m.Category == category {
			out = append(out, m.Text)
		}
	}
	return out
}

// All returns every recorded message in emission order.
func (f *Flash) All() []Message {
	return f.messages
}

// Reset discards all recorded messages.
func (f *Flash) Reset() {
	f.messages = nil
}
