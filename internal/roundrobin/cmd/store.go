// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/roundrobin/pkg/tournament"
)

// roundrobin save
func Save(store *tournament.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save [team...]",
		Short: "Generate a schedule and save it for later",
		Args:  cobra.ArbitraryArgs,
		Long: heredoc.Doc(`save generates a schedule exactly like generate does and
			stores it, together with its teams, under the tournament's name.
			Saving under an existing name replaces the old tournament.

			Saved tournaments can be viewed with show and printed with print
			without being generated again.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			tour, err := readTournament(cmd, args)
			if err != nil {
				return err
			}

			if err := store.Save(tour); err != nil {
				return fmt.Errorf("save tournament: %w", err)
			}

			logrus.WithField("dir", store.Dir).Debug("Tournament saved")
			fmt.Fprintf(cmd.OutOrStdout(), "Tournament schedule \x1b[32m%s\x1b[0m saved successfully!\n", tour.Name)
			return nil
		},
	}

	inputFlags(cmd)
	return cmd
}

// roundrobin show
func Show(store *tournament.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show name",
		Short: "Show a saved tournament schedule",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			tour, err := store.Load(args[0])
			if err != nil {
				return err
			}

			return writeTournament(cmd, tour)
		},
	}

	outputFlags(cmd)
	return cmd
}

// roundrobin list
func List(store *tournament.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the saved tournaments",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := store.List()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(names) == 0 {
				fmt.Fprintln(out, "\x1b[31mNo Tournaments Saved.\x1b[0m")
				return nil
			}

			fmt.Fprint(out, "\x1b[32mSaved Tournaments\x1b[0m:\n\n")
			for _, name := range names {
				fmt.Fprintf(out, "- %s\n", name)
			}

			return nil
		},
	}
}

// roundrobin remove
func Remove(store *tournament.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "remove name",
		Short: "Delete a saved tournament",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store.Remove(args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\x1b[32mRemoved Tournament:\x1b[0m %s\n", args[0])
			return nil
		},
	}
}
