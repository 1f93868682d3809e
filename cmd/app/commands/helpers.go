// Package commands contains CLI command implementations for the application.
package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/golang-migrate/migrate/v4"

	"github.com/allisson/campus/internal/app"
	authDomain "github.com/allisson/campus/internal/auth/domain"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// closeContainer closes all resources in the container and logs any errors.
func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// closeMigrate closes the migration instance and logs any errors.
func closeMigrate(migrate *migrate.Migrate, logger *slog.Logger) {
	sourceError, databaseError := migrate.Close()
	if sourceError != nil || databaseError != nil {
		logger.Error(
			"failed to close the migrate",
			slog.Any("source_error", sourceError),
			slog.Any("database_error", databaseError),
		)
	}
}

// parseRole converts a role flag into an authDomain.Role.
func parseRole(role string) (authDomain.Role, error) {
	r, ok := authDomain.ParseRole(strings.ToLower(strings.TrimSpace(role)))
	if !ok {
		return "", fmt.Errorf("invalid role: %s (valid options: student, faculty, admin)", role)
	}
	return r, nil
}

// validateFormat rejects output formats other than text and json.
func validateFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("invalid format: %s (valid options: text, json)", format)
	}
}

// promptLine writes prompt and reads one trimmed line from reader.
func promptLine(io IOTuple, prompt string) (string, error) {
	if io.Reader == nil {
		return "", fmt.Errorf("no input available for %q", strings.TrimSpace(prompt))
	}
	_, _ = fmt.Fprint(io.Writer, prompt)

	scanner := bufio.NewScanner(io.Reader)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", fmt.Errorf("no input available for %q", strings.TrimSpace(prompt))
	}
	return strings.TrimSpace(scanner.Text()), nil
}

// writeJSON prints v as indented JSON for machine consumption.
func writeJSON(writer io.Writer, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
	return nil
}
