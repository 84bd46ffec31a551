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

// Package schedule implements round-robin pairing using the circle method.
package schedule

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when there are too few participants to
// hold a tournament.
var ErrInvalidInput = errors.New("at least 2 participants are required")

// Match is a single encounter between two participants.
type Match struct {
	A string `yaml:"team1" json:"team1"`
	B string `yaml:"team2" json:"team2"`
}

func (match Match) String() string {
	return match.A + " vs " + match.B
}

// Round is a numbered set of matches in which nobody plays twice.
type Round struct {
	Number  int     `yaml:"round" json:"round"`
	Matches []Match `yaml:"matches" json:"matches"`

	// Bye is the participant sitting this round out. Only ever set when
	// the participant count is odd.
	Bye string `yaml:"bye,omitempty" json:"bye,omitempty"`
}

// Schedule is the ordered list of rounds of a tournament.
type Schedule []Round

// Matches returns the total number of matches across all rounds.
func (schedule Schedule) Matches() int {
	total := 0
	for _, round := range schedule {
		total += len(round.Matches)
	}

	return total
}

// Generate creates a single round-robin schedule for the given
// participants. Every pair of positions meets exactly once; an odd number
// of participants adds one round, with a different participant resting
// in each. The input slice is not modified and the output shares no
// memory with it.
func Generate(participants []string) (Schedule, error) {
	player_count := len(participants)
	if player_count < 2 {
		return nil, fmt.Errorf("generate schedule: got %d participants: %w", player_count, ErrInvalidInput)
	}

	circle := NewCircle(player_count)
	total_rounds := len(circle) - 1

	schedule := make(Schedule, 0, total_rounds)
	for round := 0; round < total_rounds; round++ {
		current := Round{
			Number:  round + 1,
			Matches: make([]Match, 0, len(circle)/2),
		}

		for _, pair := range circle.Pairs() {
			player1, player2 := pair[0], pair[1]

			switch {
			case player1 >= player_count:
				current.Bye = participants[player2]
			case player2 >= player_count:
				current.Bye = participants[player1]
			default:
				current.Matches = append(current.Matches, Match{
					A: participants[player1],
					B: participants[player2],
				})
			}
		}

		schedule = append(schedule, current)
		circle = circle.Rotate()
	}

	return schedule, nil
}
