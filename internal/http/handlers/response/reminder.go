package response

import (
	"brainbox/internal/core/domain/reminder"
	"time"
)

type Reminder struct {
	ID        string `json:"id"`
	Task      string `json:"task"`
	DueTs     string `json:"due_ts"`
	Delivered bool   `json:"delivered"`
}

func (r *Reminder) FromDomainType(dr reminder.Reminder) {
	r.ID = string(dr.ID)
	r.Task = dr.Task
	r.DueTs = dr.DueAt.UTC().Format(time.RFC3339Nano)
	r.Delivered = dr.Delivered
}

func NewReminders(reminders []reminder.Reminder) []Reminder {
	result := make([]Reminder, 0, len(reminders))
	for _, r := range reminders {
		item := Reminder{}
		item.FromDomainType(r)
		result = append(result, item)
	}
	return result
}
