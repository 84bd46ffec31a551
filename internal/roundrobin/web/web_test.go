package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/roundrobin/pkg/tournament"
)

func serve(t *testing.T, handler http.Handler, method, target string, form url.Values) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)
	return rec, doc
}

func TestForm(t *testing.T) {
	handler := New(&tournament.Store{Dir: t.TempDir()})

	rec, doc := serve(t, handler, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, DefaultTeams, doc.Find(`input[name="team"]`).Length())

	rec, doc = serve(t, handler, http.MethodGet, "/?count=6", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 6, doc.Find(`input[name="team"]`).Length())
	value, _ := doc.Find("#team6").Attr("value")
	assert.Equal(t, "Team 6", value)

	rec, doc = serve(t, handler, http.MethodGet, "/?count=1", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, doc.Find(".error").Text())
}

func TestSchedule(t *testing.T) {
	handler := New(&tournament.Store{Dir: t.TempDir()})

	form := url.Values{"name": {"Cup"}, "team": {"A", "", "C"}}
	rec, doc := serve(t, handler, http.MethodPost, "/schedule", form)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "Cup", doc.Find("h1").Text())
	assert.Equal(t, 3, doc.Find(".round").Length())
	assert.Equal(t, "Team 2 vs C", doc.Find(".match").First().Text())
	assert.Equal(t, 1, doc.Find(`form[action="/save"]`).Length())
}

func TestScheduleInvalid(t *testing.T) {
	handler := New(&tournament.Store{Dir: t.TempDir()})

	rec, doc := serve(t, handler, http.MethodPost, "/schedule", url.Values{"team": {"Solo"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, doc.Find(".error").Text())
	assert.Equal(t, 2, doc.Find(`input[name="team"]`).Length())
}

func TestTooManyTeams(t *testing.T) {
	store := &tournament.Store{Dir: t.TempDir()}
	handler := New(store)

	teams := make([]string, MaxTeams+1)
	for i := range teams {
		teams[i] = tournament.Placeholder(i)
	}
	form := url.Values{"name": {"Huge"}, "team": teams}

	for _, target := range []string{"/schedule", "/save"} {
		rec, doc := serve(t, handler, http.MethodPost, target, form)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Contains(t, doc.Find(".error").Text(), "at most 256 teams", target)
		assert.Equal(t, 0, doc.Find(".round").Length(), target)
	}

	names, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestSaveAndReload(t *testing.T) {
	store := &tournament.Store{Dir: t.TempDir()}
	handler := New(store)

	form := url.Values{"name": {"Autumn League"}, "team": {"Lions", "Tigers"}}
	rec, _ := serve(t, handler, http.MethodPost, "/save", form)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/saved/Autumn%20League", rec.Header().Get("Location"))

	saved, err := store.Load("Autumn League")
	require.NoError(t, err)
	assert.Equal(t, []string{"Lions", "Tigers"}, saved.Teams)

	rec, doc := serve(t, handler, http.MethodGet, "/saved/Autumn%20League", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Lions vs Tigers", doc.Find(".match").Text())
	assert.Equal(t, 0, doc.Find(`form[action="/save"]`).Length())

	rec, _ = serve(t, handler, http.MethodGet, "/saved/nothing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
