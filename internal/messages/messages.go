package messages

// ContentLoaded carries a fresh snapshot of text from a content source.
type ContentLoaded struct {
	Source string
	Text   string
}

// SourceExited is sent when a content source stops producing output,
// e.g. a command finished or a watched file was removed.
type SourceExited struct {
	Source string
	Err    error
}

// ConfigChanged is sent when the config file changed on disk.
type ConfigChanged struct{}

// ToastLevel identifies the type of toast notification to display.
type ToastLevel string

const (
	ToastInfo    ToastLevel = "info"
	ToastSuccess ToastLevel = "success"
	ToastError   ToastLevel = "error"
	ToastWarning ToastLevel = "warning"
)

// Toast requests a toast notification in the UI.
type Toast struct {
	Message string
	Level   ToastLevel
}

// Error is sent when an asynchronous operation fails.
type Error struct {
	Err     error
	Context string
	Logged  bool // already written to the log
}

func (e Error) Error() string {
	if e.Err == nil {
		return e.Context
	}
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

func (e Error) Unwrap() error {
	return e.Err
}
