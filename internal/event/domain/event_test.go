package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvent_Full(t *testing.T) {
	limit := 2

	assert.False(t, (&Event{RegistrationCount: 100}).Full(), "no limit")
	assert.False(t, (&Event{MaxAttendees: &limit, RegistrationCount: 1}).Full())
	assert.True(t, (&Event{MaxAttendees: &limit, RegistrationCount: 2}).Full())
}

func TestEvent_ValidateDates(t *testing.T) {
	start := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	before := start.Add(-time.Hour)
	after := start.Add(time.Hour)

	assert.NoError(t, (&Event{StartDate: start}).ValidateDates())
	assert.NoError(t, (&Event{StartDate: start, EndDate: &after}).ValidateDates())
	assert.NoError(t, (&Event{StartDate: start, EndDate: &start}).ValidateDates())
	assert.ErrorIs(t, (&Event{StartDate: start, EndDate: &before}).ValidateDates(), ErrInvalidDates)
}

func TestUpdateEventInput_Apply(t *testing.T) {
	title := "New title"
	limit := 30
	e := &Event{Title: "Old", Location: "Hall A", Category: "general"}

	(&UpdateEventInput{Title: &title, MaxAttendees: &limit}).Apply(e)

	assert.Equal(t, "New title", e.Title)
	assert.Equal(t, "Hall A", e.Location)
	assert.Equal(t, 30, *e.MaxAttendees)
}
