package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/insightdelivered/statement-extractor/internal/api"
)

var addrFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the conversion API over HTTP",
	Long: `Starts an HTTP server with two endpoints:
  GET  /api/health   liveness check
  POST /api/convert  multipart form with "file" (PDF) or "text", optional "type"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(verboseFlag)
		app := api.NewApp(&api.Handler{Log: log})

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			errCh <- app.Listen(addrFlag)
		}()
		fmt.Printf("Listening on %s\n", addrFlag)

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
			fmt.Println("Shutting down")
			return app.Shutdown()
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&addrFlag, "addr", ":8080", "Listen address")
}
