package savings

// NoticeKind is the severity of a message sent to the Notifier.
type NoticeKind int

const (
	Info NoticeKind = iota
	Warning
	Error
)

func (k NoticeKind) String() string {
	switch k {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(question string) bool
}

// Notifier surfaces advisories and errors to the user.
type Notifier interface {
	Notify(kind NoticeKind, message string)
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(question string) bool

func (f ConfirmFunc) Confirm(question string) bool { return f(question) }

// NotifyFunc adapts a function to the Notifier interface.
type NotifyFunc func(kind NoticeKind, message string)

func (f NotifyFunc) Notify(kind NoticeKind, message string) { f(kind, message) }

// Decline is a Confirmer that answers no to everything.
var Decline Confirmer = ConfirmFunc(func(string) bool { return false })

// Discard is a Notifier that drops every message.
var Discard Notifier = NotifyFunc(func(NoticeKind, string) {})
