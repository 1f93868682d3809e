package validation

import (
	"testing"
	"time"

	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/campus/internal/errors"
)

func TestPasswordStrength(t *testing.T) {
	rule := PasswordStrength{MinLength: 8}

	valid := []string{"", "campus2026", "pässwörd", "correct horse battery"}
	for _, password := range valid {
		assert.NoError(t, rule.Validate(password), password)
	}

	assert.EqualError(t, rule.Validate("short"), "must be at least 8 characters")
	assert.EqualError(t, rule.Validate("ünï"), "must be at least 8 characters")
	assert.EqualError(t, rule.Validate("          "), "must not be blank")
	assert.EqualError(t, rule.Validate(12345678), "must be a string")
}

func TestEmail(t *testing.T) {
	valid := []string{"", "student@klh.edu", "first.last+clubs@cs.klh.edu.in"}
	for _, email := range valid {
		assert.NoError(t, validation.Validate(email, Email), email)
	}

	invalid := []string{"student", "student@klh", "@klh.edu", "student@@klh.edu", "stu dent@klh.edu"}
	for _, email := range invalid {
		assert.EqualError(t, validation.Validate(email, Email), "must be a valid email address", email)
	}
}

func TestNotBlank(t *testing.T) {
	assert.NoError(t, validation.Validate("Robotics Club", NotBlank))
	assert.NoError(t, validation.Validate("", NotBlank))
	assert.EqualError(t, validation.Validate(" \t\n", NotBlank), "must not be blank")
}

type sampleRequest struct {
	Title     string `json:"title"`
	StartDate string `json:"start_date"`
	Email     string `json:"email"`
}

func (r *sampleRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required, NotBlank),
		validation.Field(&r.StartDate, validation.Required),
		validation.Field(&r.Email, Email),
	)
}

func TestWrapValidationError(t *testing.T) {
	tests := []struct {
		name     string
		req      sampleRequest
		order    []string
		expected string
	}{
		{
			name:     "two missing fields in declared order",
			req:      sampleRequest{},
			order:    []string{"title", "start_date"},
			expected: "title and start_date required",
		},
		{
			name:     "blank counts as missing",
			req:      sampleRequest{Title: "   "},
			order:    []string{"title", "start_date"},
			expected: "title and start_date required",
		},
		{
			name:     "single missing field",
			req:      sampleRequest{Title: "Hackathon"},
			order:    []string{"title", "start_date"},
			expected: "start_date required",
		},
		{
			name:     "missing fields without order are sorted",
			req:      sampleRequest{},
			expected: "start_date and title required",
		},
		{
			name:     "format error reports the field",
			req:      sampleRequest{Title: "Hackathon", StartDate: "2026-01-01", Email: "nope"},
			expected: "email must be a valid email address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WrapValidationError(tt.req.Validate(), tt.order...)

			assert.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestWrapValidationError_NonValidationError(t *testing.T) {
	assert.NoError(t, WrapValidationError(nil))

	err := WrapValidationError(assert.AnError)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Equal(t, assert.AnError.Error(), err.Error())
}

func TestJoinFields(t *testing.T) {
	assert.Equal(t, "", JoinFields(nil))
	assert.Equal(t, "a", JoinFields([]string{"a"}))
	assert.Equal(t, "a and b", JoinFields([]string{"a", "b"}))
	assert.Equal(t, "a, b and c", JoinFields([]string{"a", "b", "c"}))
}

func TestOneOf(t *testing.T) {
	rule := OneOf("low", "normal", "high")

	assert.NoError(t, rule.Validate("normal"))
	assert.NoError(t, rule.Validate(""))
	assert.EqualError(t, rule.Validate("asap"), "must be one of low, normal, high")
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2026-03-01T09:30:00Z", time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)},
		{"2026-03-01T09:30:00+05:30", time.Date(2026, 3, 1, 4, 0, 0, 0, time.UTC)},
		{"2026-03-01T09:30", time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)},
		{"2026-03-01", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			assert.NoError(t, err)
			assert.True(t, tt.want.Equal(got), got)
		})
	}

	_, err := ParseTimestamp("next tuesday")
	assert.Error(t, err)
	assert.Error(t, validation.Validate("01/03/2026", Timestamp))
	assert.NoError(t, validation.Validate("", Timestamp))
}

func TestUUID(t *testing.T) {
	assert.NoError(t, validation.Validate("0190a3c4-5d6e-7f80-9a1b-2c3d4e5f6a7b", UUID))
	assert.NoError(t, validation.Validate("", UUID))
	assert.Error(t, validation.Validate("42", UUID))
}
