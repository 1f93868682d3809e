package commands

import (
	"context"
	"fmt"
	"log/slog"

	userUsecase "github.com/allisson/campus/internal/user/usecase"
)

// RunUpdateUserRole reassigns the role of the account registered under email.
func RunUpdateUserRole(
	ctx context.Context,
	userUseCase userUsecase.UseCase,
	logger *slog.Logger,
	io IOTuple,
	email, role, format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	parsedRole, err := parseRole(role)
	if err != nil {
		return err
	}

	user, err := userUseCase.UpdateRoleByEmail(ctx, email, parsedRole)
	if err != nil {
		return fmt.Errorf("failed to update user role: %w", err)
	}

	logger.Info("user role updated",
		slog.String("id", user.ID.String()),
		slog.String("role", string(user.Role)),
	)
	return writeUser(io, user, "User role updated successfully!", format)
}
