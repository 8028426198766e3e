package reminder

import (
	"brainbox/internal/core/domain/errors"
	"brainbox/internal/core/domain/reminder"
	"brainbox/internal/db/jsonfile"
	"context"
	"time"
)

// FileReminderRepository keeps reminders in one JSON file. Due timestamps are
// stored as the original strings, so records that are not touched by an
// update are written back byte for byte.
type FileReminderRepository struct {
	store *jsonfile.Store[reminderSchema]
}

type reminderSchema struct {
	ID        string `json:"id"`
	Task      string `json:"task"`
	DueTs     string `json:"due_ts"`
	Delivered bool   `json:"delivered"`
}

func NewFileReminderRepository(path string) (*FileReminderRepository, error) {
	if path == "" {
		panic(errors.NewNilArgumentError("path"))
	}
	store, err := jsonfile.New[reminderSchema](path)
	if err != nil {
		return nil, err
	}
	return &FileReminderRepository{store: store}, nil
}

func (r *FileReminderRepository) Create(
	ctx context.Context,
	input reminder.CreateInput,
) (rem reminder.Reminder, err error) {
	encoded := encodeReminder(reminder.Reminder{
		ID:        input.ID,
		Task:      input.Task,
		DueAt:     input.DueAt,
		Delivered: input.Delivered,
	})
	err = r.store.Update(ctx, func(items []reminderSchema) ([]reminderSchema, error) {
		for _, item := range items {
			if item.ID == encoded.ID {
				return nil, reminder.ErrReminderAlreadyExists
			}
		}
		return append(items, encoded), nil
	})
	if err != nil {
		return rem, err
	}
	return decodeReminder(encoded), nil
}

func (r *FileReminderRepository) Read(
	ctx context.Context,
	options reminder.ReadOptions,
) ([]reminder.Reminder, error) {
	items, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	reminders := make([]reminder.Reminder, 0, len(items))
	for _, item := range items {
		rem := decodeReminder(item)
		if options.Match(rem) {
			reminders = append(reminders, rem)
		}
	}
	return reminders, nil
}

func (r *FileReminderRepository) Update(
	ctx context.Context,
	input reminder.UpdateInput,
) (rem reminder.Reminder, err error) {
	err = r.store.Update(ctx, func(items []reminderSchema) ([]reminderSchema, error) {
		for ix := range items {
			if items[ix].ID != string(input.ID) {
				continue
			}
			rem = decodeReminder(items[ix])
			input.Apply(&rem)
			updated := encodeReminder(rem)
			if !input.DoDueAtUpdate {
				updated.DueTs = items[ix].DueTs
			}
			items[ix] = updated
			return items, nil
		}
		return nil, reminder.ErrReminderDoesNotExist
	})
	return rem, err
}

func (r *FileReminderRepository) DeleteAll(ctx context.Context) error {
	return r.store.Save(ctx, nil)
}

func encodeReminder(rem reminder.Reminder) reminderSchema {
	return reminderSchema{
		ID:        string(rem.ID),
		Task:      rem.Task,
		DueTs:     rem.DueAt.UTC().Format(time.RFC3339Nano),
		Delivered: rem.Delivered,
	}
}

// decodeReminder never fails: an unreadable due_ts decodes to the zero time,
// which makes the reminder due right away.
func decodeReminder(item reminderSchema) reminder.Reminder {
	dueAt, err := time.Parse(time.RFC3339Nano, item.DueTs)
	if err != nil {
		dueAt = time.Time{}
	}
	return reminder.Reminder{
		ID:        reminder.ID(item.ID),
		Task:      item.Task,
		DueAt:     dueAt.UTC(),
		Delivered: item.Delivered,
	}
}
