package reminder

import (
	"context"
	"fmt"
	"sync"
)

type FakeRepository struct {
	Reminders   []Reminder
	CreateError error
	ReadError   error
	UpdateError error
	DeleteError error
	ReadWith    []ReadOptions
	UpdateWith  []UpdateInput
	lock        sync.Mutex
}

func NewFakeRepository(reminders ...Reminder) *FakeRepository {
	return &FakeRepository{Reminders: reminders}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateInput) (rem Reminder, err error) {
	if r.CreateError != nil {
		return rem, r.CreateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	rem = Reminder{ID: input.ID, Task: input.Task, DueAt: input.DueAt, Delivered: input.Delivered}
	r.Reminders = append(r.Reminders, rem)
	return rem, nil
}

func (r *FakeRepository) Read(ctx context.Context, options ReadOptions) ([]Reminder, error) {
	if r.ReadError != nil {
		return nil, r.ReadError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.ReadWith = append(r.ReadWith, options)
	result := make([]Reminder, 0, len(r.Reminders))
	for _, rem := range r.Reminders {
		if options.Match(rem) {
			result = append(result, rem)
		}
	}
	return result, nil
}

func (r *FakeRepository) Update(ctx context.Context, input UpdateInput) (rem Reminder, err error) {
	if r.UpdateError != nil {
		return rem, r.UpdateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.UpdateWith = append(r.UpdateWith, input)
	for ix := range r.Reminders {
		if r.Reminders[ix].ID == input.ID {
			input.Apply(&r.Reminders[ix])
			return r.Reminders[ix], nil
		}
	}
	return rem, ErrReminderDoesNotExist
}

func (r *FakeRepository) DeleteAll(ctx context.Context) error {
	if r.DeleteError != nil {
		return r.DeleteError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Reminders = nil
	return nil
}

type FakeIdentityGenerator struct {
	Prefix string
	count  int
	lock   sync.Mutex
}

func NewFakeIdentityGenerator(prefix string) *FakeIdentityGenerator {
	return &FakeIdentityGenerator{Prefix: prefix}
}

func (g *FakeIdentityGenerator) GenerateReminderID() ID {
	g.lock.Lock()
	defer g.lock.Unlock()
	g.count++
	return ID(fmt.Sprintf("%s-%d", g.Prefix, g.count))
}

type FakeDueSource struct {
	Due          []Reminder
	ListError    error
	AckError     error
	Acknowledged []ID
	ListCalls    int
	lock         sync.Mutex
}

func NewFakeDueSource(due ...Reminder) *FakeDueSource {
	return &FakeDueSource{Due: due}
}

func (s *FakeDueSource) ListDue(ctx context.Context) ([]Reminder, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.ListCalls++
	if s.ListError != nil {
		return nil, s.ListError
	}
	return s.Due, nil
}

func (s *FakeDueSource) Acknowledge(ctx context.Context, id ID, snoozeMinutes int) error {
	if s.AckError != nil {
		return s.AckError
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Acknowledged = append(s.Acknowledged, id)
	return nil
}

type FakeNotifier struct {
	Sent  []Notification
	Error error
	lock  sync.Mutex
}

func NewFakeNotifier() *FakeNotifier {
	return &FakeNotifier{}
}

func (n *FakeNotifier) Notify(ctx context.Context, notification Notification) error {
	if n.Error != nil {
		return n.Error
	}
	n.lock.Lock()
	defer n.lock.Unlock()
	n.Sent = append(n.Sent, notification)
	return nil
}
