package render

import (
	"encoding/json"
	"io"

	"laptudirm.com/x/roundrobin/pkg/tournament"
)

// JSON writes the tournament in the same shape it is saved in.
func JSON(w io.Writer, tour *tournament.Tournament) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(tour)
}
