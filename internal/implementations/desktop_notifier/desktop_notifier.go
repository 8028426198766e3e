package desktopnotifier

import (
	"brainbox/internal/core/domain/reminder"
	"context"
	"sync"

	"github.com/gen2brain/beeep"
)

const APP_NAME = "BrainBox Assistant"

var appNameOnce sync.Once

type notifyFunc func(title, message string) error

// Notifier raises native desktop notifications.
type Notifier struct {
	notify notifyFunc
}

func New() *Notifier {
	appNameOnce.Do(func() {
		beeep.AppName = APP_NAME
	})
	return &Notifier{notify: func(title, message string) error {
		return beeep.Notify(title, message, "")
	}}
}

func (n *Notifier) Notify(ctx context.Context, notification reminder.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return n.notify(notification.Title, notification.Message)
}
