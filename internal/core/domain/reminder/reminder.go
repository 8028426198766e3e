package reminder

import (
	e "brainbox/internal/core/domain/errors"
	"time"

	"github.com/golang-module/carbon/v2"
)

// DUE_OFFSET is how far in the future a new reminder becomes due.
const DUE_OFFSET = time.Minute

type ID string

type Reminder struct {
	ID        ID
	Task      string
	DueAt     time.Time
	Delivered bool
}

// IsDue reports whether the reminder is pending and its due time has come.
// The condition is derived on every call and never stored.
func (r Reminder) IsDue(now time.Time) bool {
	return !r.Delivered && !r.DueAt.After(now)
}

func (r Reminder) Validate() error {
	if r.ID == "" {
		return e.NewInvalidStateError("reminder ID must be set")
	}
	if r.DueAt.IsZero() {
		return e.NewInvalidStateError("reminder due time must be set")
	}
	return nil
}

// DueAtFrom returns the due time of a reminder created at now.
func DueAtFrom(now time.Time) time.Time {
	return carbon.Time2Carbon(now.UTC()).AddMinutes(int(DUE_OFFSET / time.Minute)).Carbon2Time().UTC()
}

// SnoozedUntil returns the due time of a reminder snoozed at now.
func SnoozedUntil(now time.Time, minutes int) time.Time {
	return carbon.Time2Carbon(now.UTC()).AddMinutes(minutes).Carbon2Time().UTC()
}

type IdentityGenerator interface {
	GenerateReminderID() ID
}
