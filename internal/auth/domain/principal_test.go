package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/campus/internal/errors"
)

func TestNewPrincipal(t *testing.T) {
	id := uuid.Must(uuid.NewV7())

	p, err := NewPrincipal(id, "faculty@klh.edu", RoleFaculty, "Demo Faculty")
	require.NoError(t, err)
	assert.Equal(t, id, p.ID())
	assert.Equal(t, "faculty@klh.edu", p.Email())
	assert.Equal(t, RoleFaculty, p.Role())
	assert.Equal(t, "Demo Faculty", p.Name())
	assert.True(t, p.Is(RoleFaculty))
	assert.False(t, p.Is(RoleAdmin))

	_, err = NewPrincipal(uuid.Nil, "x@klh.edu", RoleStudent, "X")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = NewPrincipal(id, "x@klh.edu", Role("superuser"), "X")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestPrincipal_IsOnNil(t *testing.T) {
	var p *Principal
	assert.False(t, p.Is(RoleAdmin))
}

func TestParseRole(t *testing.T) {
	for _, r := range Roles {
		parsed, ok := ParseRole(string(r))
		assert.True(t, ok)
		assert.Equal(t, r, parsed)
	}

	_, ok := ParseRole("Admin")
	assert.False(t, ok)
	_, ok = ParseRole("")
	assert.False(t, ok)
}

func TestDashboardFor(t *testing.T) {
	assert.Equal(t, "dashboard-student.html", DashboardFor(RoleStudent))
	assert.Equal(t, "dashboard-faculty.html", DashboardFor(RoleFaculty))
	assert.Equal(t, "dashboard-admin.html", DashboardFor(RoleAdmin))
	assert.Equal(t, "index.html", DashboardFor(Role("guest")))
}
