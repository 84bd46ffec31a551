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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/roundrobin/internal/util"
	roundrobin "laptudirm.com/x/roundrobin/pkg/common"
)

// ErrNotFound is returned when a saved tournament doesn't exist.
var ErrNotFound = errors.New("tournament not found")

const extension = ".yaml"

// Store keeps saved tournaments as yaml files inside a directory.
type Store struct {
	Dir string
}

// NewStore returns the store in the user's data directory.
func NewStore() *Store {
	return &Store{Dir: roundrobin.TournamentDirectory}
}

var slugRegexp = regexp.MustCompile(`[^a-z0-9]+`)

// Slug turns a tournament name into the base name of its file.
func Slug(name string) string {
	slug := strings.Trim(slugRegexp.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if slug == "" {
		return strings.ToLower(DefaultName)
	}

	return slug
}

func (store *Store) path(name string) string {
	return filepath.Join(store.Dir, Slug(name)+extension)
}

// Save writes the tournament to the store, replacing any tournament which
// was saved under the same name.
func (store *Store) Save(tour *Tournament) error {
	if err := roundrobin.TryMkdir(store.Dir); err != nil {
		return fmt.Errorf("save %s: %w", tour.Name, err)
	}

	data, err := yaml.Marshal(tour)
	if err != nil {
		return fmt.Errorf("save %s: %w", tour.Name, err)
	}

	path := store.path(tour.Name)
	logrus.WithField("path", path).Debug("Saving tournament")
	return os.WriteFile(path, data, roundrobin.FilePermissions)
}

// Load reads a saved tournament. The stored schedule is returned as it
// was saved, it is not generated again.
func (store *Store) Load(name string) (*Tournament, error) {
	path := store.path(name)
	logrus.WithField("path", path).Debug("Loading tournament")

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", name, ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}

	var tour Tournament
	if err := yaml.Unmarshal(data, &tour); err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}

	return &tour, nil
}

// List returns the names of all saved tournaments in natural order.
func (store *Store) List() ([]string, error) {
	entries, err := os.ReadDir(store.Dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != extension {
			continue
		}

		tour, err := store.Load(strings.TrimSuffix(entry.Name(), extension))
		if err != nil {
			logrus.WithError(err).Warnf("Skipping unreadable tournament file %s", entry.Name())
			continue
		}

		names = append(names, tour.Name)
	}

	sort.Slice(names, func(i, j int) bool {
		return util.AlphanumCompare(names[i], names[j])
	})

	return names, nil
}

// Remove deletes a saved tournament.
func (store *Store) Remove(name string) error {
	err := os.Remove(store.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", name, ErrNotFound)
	}

	return err
}
