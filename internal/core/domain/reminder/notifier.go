package reminder

import "context"

// DueSource is the remote side of the notifier: it lists due reminders and
// accepts acknowledgements over the request boundary.
type DueSource interface {
	ListDue(ctx context.Context) ([]Reminder, error)
	Acknowledge(ctx context.Context, id ID, snoozeMinutes int) error
}

type Notification struct {
	Title   string
	Message string
}

type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
