package identity

import (
	"brainbox/internal/core/domain/reminder"

	"github.com/google/uuid"
)

type UUID struct{}

func NewUUID() *UUID {
	return &UUID{}
}

func (g *UUID) GenerateReminderID() reminder.ID {
	return reminder.ID(uuid.New().String())
}
