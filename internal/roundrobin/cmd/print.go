package cmd

import (
	"bytes"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/roundrobin/internal/util"
	"laptudirm.com/x/roundrobin/pkg/render"
	"laptudirm.com/x/roundrobin/pkg/tournament"
)

// roundrobin print
func Print(store *tournament.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print { name | team... }",
		Short: "Send a schedule to the printer",
		Args:  cobra.ArbitraryArgs,
		Long: heredoc.Doc(`print sends a plain text schedule to the system printer.

			A single argument with no input flags names a saved tournament,
			which is printed as it was saved. Otherwise the arguments and
			input flags are used to generate a new schedule, just like
			generate.

			The schedule is piped into lp by default; set the
			ROUNDROBIN_PRINTER environment variable to use another command.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			var tour *tournament.Tournament
			var err error

			if len(args) == 1 && !changed(cmd, "file", "name", "teams") {
				tour, err = store.Load(args[0])
			} else {
				tour, err = readTournament(cmd, args)
			}

			if err != nil {
				return err
			}

			var document bytes.Buffer
			if err := render.Text(&document, tour, true); err != nil {
				return err
			}

			logrus.WithField("name", tour.Name).Info("Printing tournament schedule...")
			if err := util.Print(cmd.Context(), &document); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Sent \x1b[32m%s\x1b[0m to the printer.\n", tour.Name)
			return nil
		},
	}

	inputFlags(cmd)
	return cmd
}

// changed reports whether any of the named flags was set.
func changed(cmd *cobra.Command, flags ...string) bool {
	for _, flag := range flags {
		if cmd.Flags().Changed(flag) {
			return true
		}
	}

	return false
}
