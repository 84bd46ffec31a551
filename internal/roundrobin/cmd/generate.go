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
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

// roundrobin generate
func Generate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [team...]",
		Short: "Generate a round robin schedule for the given teams",
		Args:  cobra.ArbitraryArgs,
		Long: heredoc.Doc(`generate pairs every team against every other team exactly
			once, spread over rounds in which no team plays twice. An odd
			number of teams gives every team one bye.

			Teams can be given as arguments, read from a roster file with
			--file, or both, in which case the arguments are appended to the
			roster. A roster is either a yaml file with name, teams and count
			keys, or a text file with one team per line.

			With --teams, the list is cut or padded to that many teams, and
			blank or missing names become "Team <n>".`),
		Example: heredoc.Doc(`
			$ roundrobin generate Lions Tigers Bears
			$ roundrobin generate --teams 6 -o html > schedule.html
			$ roundrobin generate -f league.yaml -o json`),

		RunE: func(cmd *cobra.Command, args []string) error {
			tour, err := readTournament(cmd, args)
			if err != nil {
				return err
			}

			return writeTournament(cmd, tour)
		},
	}

	inputFlags(cmd)
	outputFlags(cmd)
	return cmd
}
