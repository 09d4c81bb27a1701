package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/tototime/internal/app"
	"github.com/abhisek/tototime/internal/buddy"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	e, err := openEnv(ctx, cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	e.logger.Info("starting", zap.String("version", version))
	b := buddy.Setup(ctx, e.cfg.Buddy.Enabled, e.cfg.Buddy.Timeout, e.cfg.LLM, e.logger,
		buddy.WithShareName(e.cfg.Buddy.ShareName))

	return app.Run(app.Options{
		Store:  e.progress,
		Buddy:  b,
		Logger: e.logger,
	})
}
