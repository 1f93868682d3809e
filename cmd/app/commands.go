package main

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/allisson/campus/internal/app"
	"github.com/allisson/campus/internal/config"
)

func getCommands(version string) []*cli.Command {
	cmds := []*cli.Command{}
	cmds = append(cmds, getSystemCommands(version)...)
	cmds = append(cmds, getUserCommands()...)
	return cmds
}

// newContainer loads and validates configuration before wiring dependencies.
func newContainer() (*app.Container, *config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return app.NewContainer(cfg), cfg, nil
}
