package reminder

import (
	c "brainbox/internal/core/domain/common"
	"context"
	"time"
)

type CreateInput struct {
	ID        ID
	Task      string
	DueAt     time.Time
	Delivered bool
}

type ReadOptions struct {
	DueAtNotAfter   c.Optional[time.Time]
	DeliveredEquals c.Optional[bool]
}

func (o ReadOptions) Match(r Reminder) bool {
	if o.DueAtNotAfter.IsPresent && r.DueAt.After(o.DueAtNotAfter.Value) {
		return false
	}
	if o.DeliveredEquals.IsPresent && r.Delivered != o.DeliveredEquals.Value {
		return false
	}
	return true
}

type UpdateInput struct {
	ID                ID
	DoDueAtUpdate     bool
	DueAt             time.Time
	DoDeliveredUpdate bool
	Delivered         bool
}

func (i UpdateInput) Apply(r *Reminder) {
	if i.DoDueAtUpdate {
		r.DueAt = i.DueAt
	}
	if i.DoDeliveredUpdate {
		r.Delivered = i.Delivered
	}
}

// Repository keeps reminders in insertion order. Read returns records in
// that order and Update changes the first record with the given ID.
type Repository interface {
	Create(ctx context.Context, input CreateInput) (Reminder, error)
	Read(ctx context.Context, options ReadOptions) ([]Reminder, error)
	Update(ctx context.Context, input UpdateInput) (Reminder, error)
	DeleteAll(ctx context.Context) error
}
