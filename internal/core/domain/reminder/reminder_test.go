package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var Now = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func TestIsDue(t *testing.T) {
	cases := []struct {
		id       string
		reminder Reminder
		expected bool
	}{
		{id: "1", reminder: Reminder{DueAt: Now.Add(-time.Second)}, expected: true},
		{id: "2", reminder: Reminder{DueAt: Now}, expected: true},
		{id: "3", reminder: Reminder{DueAt: Now.Add(time.Second)}, expected: false},
		{id: "4", reminder: Reminder{DueAt: Now.Add(-time.Hour), Delivered: true}, expected: false},
		{id: "5", reminder: Reminder{DueAt: Now.Add(time.Hour), Delivered: true}, expected: false},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			assert.Equal(t, testcase.expected, testcase.reminder.IsDue(Now))
		})
	}
}

func TestDueAtFrom(t *testing.T) {
	assert.Equal(t, Now.Add(time.Minute), DueAtFrom(Now))

	local := Now.In(time.FixedZone("UTC+3", 3*60*60))
	dueAt := DueAtFrom(local)
	assert.Equal(t, time.UTC, dueAt.Location())
	assert.True(t, Now.Add(time.Minute).Equal(dueAt))
}

func TestSnoozedUntil(t *testing.T) {
	assert.Equal(t, Now.Add(15*time.Minute), SnoozedUntil(Now, 15))
	assert.Equal(t, Now.Add(24*time.Hour), SnoozedUntil(Now, 24*60))
}

func TestReadOptionsMatch(t *testing.T) {
	due := Reminder{ID: "a", DueAt: Now.Add(-time.Minute)}
	future := Reminder{ID: "b", DueAt: Now.Add(time.Minute)}
	delivered := Reminder{ID: "c", DueAt: Now.Add(-time.Minute), Delivered: true}

	options := ReadOptions{}
	options.DueAtNotAfter.IsPresent = true
	options.DueAtNotAfter.Value = Now
	options.DeliveredEquals.IsPresent = true
	options.DeliveredEquals.Value = false

	assert.True(t, options.Match(due))
	assert.False(t, options.Match(future))
	assert.False(t, options.Match(delivered))
	assert.True(t, ReadOptions{}.Match(delivered))
}

func TestValidate(t *testing.T) {
	assert.Error(t, Reminder{DueAt: Now}.Validate())
	assert.Error(t, Reminder{ID: "a"}.Validate())
	assert.NoError(t, Reminder{ID: "a", DueAt: Now}.Validate())
}
