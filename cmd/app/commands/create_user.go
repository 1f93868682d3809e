package commands

import (
	"context"
	"fmt"
	"log/slog"

	userDomain "github.com/allisson/campus/internal/user/domain"
	userUsecase "github.com/allisson/campus/internal/user/usecase"
)

// RunCreateUser creates a portal account. An empty password is read from
// io.Reader so it does not have to appear in the shell history.
func RunCreateUser(
	ctx context.Context,
	userUseCase userUsecase.UseCase,
	logger *slog.Logger,
	io IOTuple,
	email, password, name, role, format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	parsedRole, err := parseRole(role)
	if err != nil {
		return err
	}

	if password == "" {
		password, err = promptLine(io, "Password: ")
		if err != nil {
			return err
		}
	}

	logger.Info("creating user", slog.String("email", email), slog.String("role", string(parsedRole)))

	user, err := userUseCase.Create(ctx, &userDomain.CreateUserInput{
		Email:    email,
		Password: password,
		Name:     name,
		Role:     parsedRole,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	logger.Info("user created", slog.String("id", user.ID.String()))
	return writeUser(io, user, "User created successfully!", format)
}

// writeUser prints user in the requested format.
func writeUser(io IOTuple, user *userDomain.User, headline, format string) error {
	if format == "json" {
		return writeJSON(io.Writer, map[string]string{
			"id":    user.ID.String(),
			"email": user.Email,
			"name":  user.Name,
			"role":  string(user.Role),
		})
	}

	_, _ = fmt.Fprintf(io.Writer, "\n%s\n", headline)
	_, _ = fmt.Fprintf(io.Writer, "ID: %s\n", user.ID.String())
	_, _ = fmt.Fprintf(io.Writer, "Email: %s\n", user.Email)
	_, _ = fmt.Fprintf(io.Writer, "Name: %s\n", user.Name)
	_, _ = fmt.Fprintf(io.Writer, "Role: %s\n", user.Role)
	return nil
}
