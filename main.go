package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/orator-dev/orator/pkg/cli"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	if err := cli.Run(ctx, os.Args); err != nil {
		os.Exit(err.Code)
	}
}
