package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/go-readaloud/internal/server"
	"github.com/example/go-readaloud/internal/text"
	"github.com/example/go-readaloud/internal/tts"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the readaloud HTTP server",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			engine := &tts.CLIEngine{
				ExecutablePath: cfg.TTS.CLIPath,
				ConfigPath:     cfg.TTS.CLIConfigPath,
				Voice:          cfg.TTS.Voice,
				Quiet:          cfg.TTS.Quiet,
				Stderr:         os.Stderr,
			}

			svc, err := tts.NewService(engine, text.Options{
				MinChars: cfg.Chunking.MinChars,
				MaxChars: cfg.Chunking.MaxChars,
			})
			if err != nil {
				return err
			}

			srv := server.New(cfg, svc).
				WithShutdownTimeout(time.Duration(cfg.Server.ShutdownTimeout) * time.Second)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return srv.Start(ctx)
		},
	}

	return cmd
}
