package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/soocke/detect-filter-go/cmd"
	"github.com/soocke/detect-filter-go/config"
)

func main() {
	level := new(slog.LevelVar)
	logger := NewLogger(level)
	ctx := config.NewContext(level, logger)

	if err := cmd.RootCommand(ctx).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
