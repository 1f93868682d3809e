package commands

import (
	"context"
	"fmt"
	"log/slog"

	userDomain "github.com/allisson/campus/internal/user/domain"
	userUsecase "github.com/allisson/campus/internal/user/usecase"
)

// RunSeed creates the demo accounts that do not exist yet. Running it twice is harmless.
func RunSeed(
	ctx context.Context,
	userUseCase userUsecase.UseCase,
	logger *slog.Logger,
	io IOTuple,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	created, err := userUseCase.Seed(ctx, userDomain.DemoUsers)
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	logger.Info("seed completed", slog.Int("created", created))

	if format == "json" {
		return writeJSON(io.Writer, map[string]int{
			"created": created,
			"skipped": len(userDomain.DemoUsers) - created,
		})
	}

	_, _ = fmt.Fprintf(io.Writer, "Seeded %d user(s), %d already present.\n", created, len(userDomain.DemoUsers)-created)
	for _, u := range userDomain.DemoUsers {
		_, _ = fmt.Fprintf(io.Writer, "  %s (%s)\n", u.Email, u.Role)
	}
	return nil
}
