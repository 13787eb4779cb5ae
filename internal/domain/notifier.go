package domain

// Validation categories tag each message with the flow that produced it, so
// the web layer can render it next to the originating form.
const (
	CategoryRegistration = "registro"
	CategoryUpdate       = "actualizacion"
	CategoryLogin        = "login"
)

// Notifier receives user-facing messages for the current request cycle.
// The web layer typically backs it with session flash storage.
type Notifier interface {
	Notify(message, category string)
}
