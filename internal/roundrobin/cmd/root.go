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
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	roundrobin "laptudirm.com/x/roundrobin/pkg/common"
	"laptudirm.com/x/roundrobin/pkg/tournament"
)

func Root() *cobra.Command {
	store := tournament.NewStore()

	root := &cobra.Command{
		Use:   "roundrobin",
		Short: "Generate, save and print round robin tournament schedules",
		Args:  cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}

			store.Dir, _ = cmd.Flags().GetString("data-dir")
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show Roundrobin's Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().Bool("no-color", false, "Disable colored output")
	root.PersistentFlags().String("data-dir", roundrobin.TournamentDirectory, "Directory saved tournaments are kept in")

	versionStr := "v0.1.0\n"
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	// Register the various commands.
	root.AddCommand(Generate())
	root.AddCommand(Save(store))
	root.AddCommand(Show(store))
	root.AddCommand(List(store))
	root.AddCommand(Remove(store))
	root.AddCommand(Print(store))
	root.AddCommand(Serve(store))

	return root
}
