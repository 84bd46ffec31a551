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

package tournament

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/roundrobin/pkg/schedule"
)

// DefaultName is the name given to tournaments created without one.
const DefaultName = "Tournament"

// Tournament is a named list of teams together with their schedule. It is
// the unit that gets saved, loaded, rendered and printed.
type Tournament struct {
	Name     string            `yaml:"name" json:"name"`
	Teams    []string          `yaml:"teams" json:"teams"`
	Schedule schedule.Schedule `yaml:"schedule" json:"schedule"`
}

// New creates a tournament and generates its schedule. Blank team names
// are replaced by their "Team {i}" placeholder before scheduling.
func New(name string, teams []string) (*Tournament, error) {
	var tour Tournament

	tour.Name = strings.TrimSpace(name)
	if tour.Name == "" {
		tour.Name = DefaultName
	}

	tour.Teams = Names(teams)

	var err error
	tour.Schedule, err = schedule.Generate(tour.Teams)
	if err != nil {
		return nil, fmt.Errorf("new tour %s: %w", tour.Name, err)
	}

	logrus.WithFields(logrus.Fields{
		"name":    tour.Name,
		"teams":   len(tour.Teams),
		"rounds":  len(tour.Schedule),
		"matches": tour.Schedule.Matches(),
	}).Debug("Generated tournament schedule")

	return &tour, nil
}

// Names trims every raw team name, falling back to "Team {i}" (1-based
// position) for blank entries. Duplicates are kept as they are.
func Names(raw []string) []string {
	names := make([]string, len(raw))
	for i, name := range raw {
		names[i] = strings.TrimSpace(name)
		if names[i] == "" {
			names[i] = Placeholder(i)
		}
	}

	return names
}

// Placeholder returns the fallback name of the team at index i.
func Placeholder(i int) string {
	return fmt.Sprintf("Team %d", i+1)
}

// Fill sizes the raw name list to exactly count entries, dropping extras
// and padding with blanks, so that Names gives the missing teams their
// placeholders. A count of zero or less keeps the list as it is.
func Fill(raw []string, count int) []string {
	if count <= 0 {
		return raw
	}

	filled := make([]string, count)
	copy(filled, raw)
	return filled
}
