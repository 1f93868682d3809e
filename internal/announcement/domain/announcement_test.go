package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriority_Valid(t *testing.T) {
	for _, p := range Priorities {
		assert.True(t, p.Valid(), p)
	}
	assert.False(t, Priority("critical").Valid())
	assert.False(t, Priority("").Valid())
}

func TestUpdateAnnouncementInput_Apply(t *testing.T) {
	a := &Announcement{Title: "Exam schedule", Content: "Posted", Priority: PriorityNormal, Category: "academic"}
	urgent := PriorityUrgent

	(&UpdateAnnouncementInput{Priority: &urgent}).Apply(a)

	assert.Equal(t, PriorityUrgent, a.Priority)
	assert.Equal(t, "Exam schedule", a.Title)
	assert.Equal(t, "academic", a.Category)
}
