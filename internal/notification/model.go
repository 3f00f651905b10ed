package notification

import "time"

type Color string

const (
	ColorSuccess Color = "success"
	ColorError   Color = "error"
	ColorInfo    Color = "info"
	ColorWarning Color = "warning"
)

const (
	DefaultTimeout    = 3 * time.Second
	DefaultConfirm    = "Confirm"
	DefaultCancel     = "Cancel"
	GenericErrorText  = "An error occurred. Please try again later."
	NotificationSound = "/notification.mp3"
)

type Snackbar struct {
	Show     bool          `json:"show"`
	Text     string        `json:"text"`
	Color    Color         `json:"color"`
	Timeout  time.Duration `json:"timeout"`
	Closable bool          `json:"closable,omitempty"`
	// Sound is the audio cue the UI plays together with the snackbar.
	Sound string `json:"sound,omitempty"`
}

type ConfirmDialog struct {
	ID          string `json:"id"`
	Show        bool   `json:"show"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	ConfirmText string `json:"confirmText"`
	CancelText  string `json:"cancelText"`
}

type EventKind string

const (
	EventSnackbar EventKind = "snackbar"
	EventConfirm  EventKind = "confirm"
	EventNavigate EventKind = "navigate"
)

type Event struct {
	Kind     EventKind      `json:"kind"`
	Snackbar *Snackbar      `json:"snackbar,omitempty"`
	Confirm  *ConfirmDialog `json:"confirm,omitempty"`
	Route    string         `json:"route,omitempty"`
}
