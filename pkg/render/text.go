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

// Package render turns tournaments into text, html and json documents.
package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"laptudirm.com/x/roundrobin/pkg/tournament"
)

// Text writes a human readable schedule to w. Colors are only used when
// w is a terminal that supports them, and never if plain is set.
func Text(w io.Writer, tour *tournament.Tournament, plain bool) error {
	renderer := lipgloss.NewRenderer(w)

	title := renderer.NewStyle().Bold(true).Underline(true)
	round := renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	versus := renderer.NewStyle().Foreground(lipgloss.Color("#888888"))
	bye := renderer.NewStyle().Italic(true).Foreground(lipgloss.Color("#AAAAAA"))

	paint := func(style lipgloss.Style, s string) string {
		if plain {
			return s
		}
		return style.Render(s)
	}

	if _, err := fmt.Fprintf(w, "%s\n", paint(title, tour.Name)); err != nil {
		return err
	}

	for _, r := range tour.Schedule {
		if _, err := fmt.Fprintf(w, "\n%s\n", paint(round, fmt.Sprintf("Round %d", r.Number))); err != nil {
			return err
		}

		for _, match := range r.Matches {
			if _, err := fmt.Fprintf(w, "  %s %s %s\n", match.A, paint(versus, "vs"), match.B); err != nil {
				return err
			}
		}

		if r.Bye != "" {
			if _, err := fmt.Fprintf(w, "  %s\n", paint(bye, "Bye: "+r.Bye)); err != nil {
				return err
			}
		}
	}

	return nil
}
