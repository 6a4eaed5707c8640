package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	slogctx "github.com/veqryn/slog-context"

	"github.com/jardelbordignon/spacetraveling"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the blog server",
	RunE: func(cmd *cobra.Command, args []string) error {
		handler := slogctx.NewHandler(slog.NewTextHandler(os.Stderr, nil), nil)
		slog.SetDefault(slog.New(handler))

		app := spacetraveling.New(appCfg)
		defer app.Close()

		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			s := <-sigc
			slog.Info("received signal, shutting down", "signal", s.String())
			app.Echo.Shutdown(cmd.Context())
		}()

		return app.Start()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
