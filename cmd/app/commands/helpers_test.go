package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/campus/internal/auth/domain"
)

func TestParseRole(t *testing.T) {
	for input, want := range map[string]authDomain.Role{
		"student":   authDomain.RoleStudent,
		" Faculty ": authDomain.RoleFaculty,
		"ADMIN":     authDomain.RoleAdmin,
	} {
		got, err := parseRole(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := parseRole("guest")
	require.Error(t, err)
}

func TestPromptLine(t *testing.T) {
	var out bytes.Buffer
	line, err := promptLine(IOTuple{Reader: strings.NewReader("  value  \nignored\n"), Writer: &out}, "Name: ")

	require.NoError(t, err)
	assert.Equal(t, "value", line)
	assert.Equal(t, "Name: ", out.String())

	_, err = promptLine(IOTuple{Writer: &out}, "Name: ")
	require.Error(t, err)
}
