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

// Package web serves the tournament form and generated schedules over http.
package web

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/a-h/templ"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/roundrobin/pkg/render"
	"laptudirm.com/x/roundrobin/pkg/tournament"
)

// DefaultTeams is the number of team fields shown on a fresh form.
const DefaultTeams = 4

// MaxTeams caps the number of fields a form may ask for.
const MaxTeams = 256

type server struct {
	store *tournament.Store
}

// New returns the handler for the tournament pages. Saved tournaments are
// kept in store.
func New(store *tournament.Store) http.Handler {
	s := &server{store: store}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.getForm)
	mux.HandleFunc("POST /schedule", s.postSchedule)
	mux.HandleFunc("POST /save", s.postSave)
	mux.HandleFunc("GET /saved/{name}", s.getSaved)
	return mux
}

func (s *server) getForm(w http.ResponseWriter, r *http.Request) {
	count := DefaultTeams
	if value := r.URL.Query().Get("count"); value != "" {
		n, err := strconv.Atoi(value)
		if err != nil || n < 2 || n > MaxTeams {
			s.render(w, r, http.StatusBadRequest, render.Form("/schedule", render.FormValues{
				Teams: tournament.Names(make([]string, DefaultTeams)),
				Error: "Please enter at least 2 teams for a round robin tournament.",
			}))
			return
		}
		count = n
	}

	s.render(w, r, http.StatusOK, render.Form("/schedule", render.FormValues{
		Teams: tournament.Names(make([]string, count)),
	}))
}

func (s *server) readForm(w http.ResponseWriter, r *http.Request) (*tournament.Tournament, bool) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	name, teams := r.PostForm.Get("name"), r.PostForm["team"]
	if len(teams) > MaxTeams {
		logrus.WithField("teams", len(teams)).Debug("Rejected tournament form")
		s.render(w, r, http.StatusBadRequest, render.Form("/schedule", render.FormValues{
			Name:  name,
			Teams: tournament.Names(tournament.Fill(teams, MaxTeams)),
			Error: fmt.Sprintf("Please enter at most %d teams.", MaxTeams),
		}))
		return nil, false
	}

	tour, err := tournament.New(name, teams)
	if err != nil {
		logrus.WithError(err).Debug("Rejected tournament form")
		s.render(w, r, http.StatusBadRequest, render.Form("/schedule", render.FormValues{
			Name:  name,
			Teams: tournament.Names(tournament.Fill(teams, 2)),
			Error: "Please enter at least 2 teams for a round robin tournament.",
		}))
		return nil, false
	}

	return tour, true
}

func (s *server) postSchedule(w http.ResponseWriter, r *http.Request) {
	tour, ok := s.readForm(w, r)
	if !ok {
		return
	}

	s.render(w, r, http.StatusOK, render.Page(tour, render.SaveForm("/save", tour)))
}

func (s *server) postSave(w http.ResponseWriter, r *http.Request) {
	tour, ok := s.readForm(w, r)
	if !ok {
		return
	}

	if err := s.store.Save(tour); err != nil {
		logrus.WithError(err).Error("Failed to save tournament data")
		http.Error(w, "Failed to save tournament data.", http.StatusInternalServerError)
		return
	}

	logrus.WithField("name", tour.Name).Info("Tournament schedule saved")
	http.Redirect(w, r, "/saved/"+url.PathEscape(tour.Name), http.StatusSeeOther)
}

func (s *server) getSaved(w http.ResponseWriter, r *http.Request) {
	tour, err := s.store.Load(r.PathValue("name"))
	switch {
	case errors.Is(err, tournament.ErrNotFound):
		http.NotFound(w, r)
		return
	case err != nil:
		logrus.WithError(err).Error("Failed to load tournament data")
		http.Error(w, "Failed to load tournament data.", http.StatusInternalServerError)
		return
	}

	s.render(w, r, http.StatusOK, render.Page(tour, nil))
}

func (s *server) render(w http.ResponseWriter, r *http.Request, status int, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if err := component.Render(r.Context(), w); err != nil {
		logrus.WithError(err).Error("Failed to render page")
	}
}
