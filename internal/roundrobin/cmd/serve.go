package cmd

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/roundrobin/internal/roundrobin/web"
	"laptudirm.com/x/roundrobin/pkg/tournament"
)

// roundrobin serve
func Serve(store *tournament.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tournament form and schedules over http",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")

			server := &http.Server{
				Addr:              addr,
				Handler:           web.New(store),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx := cmd.Context()
			go func() {
				<-ctx.Done()
				shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = server.Shutdown(shutdown)
			}()

			logrus.WithField("addr", addr).Info("Starting server...")
			if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}

			return nil
		},
	}

	cmd.Flags().String("addr", ":8080", "Address to listen on")
	return cmd
}
