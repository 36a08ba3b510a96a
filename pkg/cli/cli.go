package cli

import (
	"context"

	"github.com/orator-dev/orator/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

type Error struct {
	Code    int
	Message string
}

func Run(ctx context.Context, argv []string) *Error {
	cmd := &cli.Command{
		Name:  "orator",
		Usage: "Interview communication coaching agent",
		Commands: []*cli.Command{
			runCommand(),
			listCommand(),
			showCommand(),
			chatCommand(),
			exportCommand(),
		},
	}

	if err := cmd.Run(ctx, argv); err != nil {
		logging.From(ctx).Error("command failed", "error", err)
		return &Error{
			Code:    1,
			Message: err.Error(),
		}
	}

	return nil
}
