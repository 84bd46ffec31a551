package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"laptudirm.com/x/roundrobin/pkg/render"
	"laptudirm.com/x/roundrobin/pkg/tournament"
)

// inputFlags registers the flags describing a new tournament.
func inputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "Read the tournament from a roster file")
	cmd.Flags().StringP("name", "n", "", "Name of the tournament")
	cmd.Flags().Int("teams", 0, "Number of teams, unnamed ones get placeholders")
}

// outputFlags registers the flags choosing how a schedule is shown.
func outputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "text", "Output format: text, html or json")
}

// readTournament builds a tournament from the roster file, the team names
// given as arguments, and the input flags, in that order.
func readTournament(cmd *cobra.Command, args []string) (*tournament.Tournament, error) {
	config := &tournament.Config{}

	if file, _ := cmd.Flags().GetString("file"); file != "" {
		var err error
		config, err = tournament.ReadConfig(file)
		if err != nil {
			return nil, err
		}
	}

	config.Teams = append(config.Teams, args...)

	if cmd.Flags().Changed("name") {
		config.Name, _ = cmd.Flags().GetString("name")
	}

	if cmd.Flags().Changed("teams") {
		config.Count, _ = cmd.Flags().GetInt("teams")
	}

	return tournament.New(config.Name, config.Participants())
}

// writeTournament shows the tournament in the format chosen by --output.
func writeTournament(cmd *cobra.Command, tour *tournament.Tournament) error {
	format, _ := cmd.Flags().GetString("output")
	plain, _ := cmd.Flags().GetBool("no-color")

	out := cmd.OutOrStdout()
	switch format {
	case "text", "":
		return render.Text(out, tour, plain)
	case "html":
		return render.Page(tour, nil).Render(cmd.Context(), out)
	case "json":
		return render.JSON(out, tour)
	default:
		return fmt.Errorf("invalid output format %s", format)
	}
}
