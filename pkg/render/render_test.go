package render

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/roundrobin/pkg/tournament"
)

func newTour(t *testing.T, name string, teams ...string) *tournament.Tournament {
	t.Helper()
	tour, err := tournament.New(name, teams)
	require.NoError(t, err)
	return tour
}

func TestTextPlain(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Text(&out, newTour(t, "Cup", "A", "B", "C"), true))

	want := strings.Join([]string{
		"Cup",
		"",
		"Round 1",
		"  B vs C",
		"  Bye: A",
		"",
		"Round 2",
		"  A vs C",
		"  Bye: B",
		"",
		"Round 3",
		"  A vs B",
		"  Bye: C",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
}

func TestTextNonTerminalHasNoEscapes(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Text(&out, newTour(t, "Cup", "A", "B"), false))

	assert.NotContains(t, out.String(), "\x1b[")
	assert.Contains(t, out.String(), "Round 1")
	assert.Contains(t, out.String(), "A vs B")
}

func TestRounds(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Rounds(newTour(t, "Cup", "A", "B", "C", "D").Schedule).Render(context.Background(), &out))

	doc, err := goquery.NewDocumentFromReader(&out)
	require.NoError(t, err)

	rounds := doc.Find("#rounds .round")
	require.Equal(t, 3, rounds.Length())
	assert.Equal(t, "Round 1", rounds.First().Find("h3").Text())
	assert.Equal(t, 6, doc.Find(".match").Length())
	assert.Equal(t, "A vs D", doc.Find(".match").First().Text())
	assert.Equal(t, 0, doc.Find(".bye").Length())
}

func TestPageEscapesNames(t *testing.T) {
	tour := newTour(t, "<Cup>", "<script>alert(1)</script>", "B & C", "D")

	var out bytes.Buffer
	require.NoError(t, Page(tour, SaveForm("/save", tour)).Render(context.Background(), &out))
	assert.NotContains(t, out.String(), "<script>")

	doc, err := goquery.NewDocumentFromReader(&out)
	require.NoError(t, err)

	assert.Equal(t, "<Cup>", doc.Find("h1").Text())
	assert.Equal(t, "<Cup>", doc.Find("title").Text())
	assert.Equal(t, 3, doc.Find(".round").Length())
	assert.Equal(t, 3, doc.Find(".bye").Length())
	assert.Equal(t, "B & C vs D", doc.Find(".match").First().Text())
	assert.Equal(t, "<script>alert(1)</script> vs B & C", doc.Find(".match").Last().Text())

	hidden := doc.Find(`form[action="/save"] input[name="team"]`)
	require.Equal(t, 3, hidden.Length())
	value, _ := hidden.Eq(1).Attr("value")
	assert.Equal(t, "B & C", value)
	assert.Equal(t, 1, doc.Find(`.no-print button[onclick="window.print()"]`).Length())
}

func TestPageWithoutActions(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Page(newTour(t, "Cup", "A", "B", "C"), nil).Render(context.Background(), &out))
	assert.True(t, strings.HasPrefix(strings.ToLower(out.String()), "<!doctype html>"))

	doc, err := goquery.NewDocumentFromReader(&out)
	require.NoError(t, err)

	assert.Equal(t, "3 teams, 3 rounds, 3 matches", doc.Find("p").First().Text())
	assert.Equal(t, 0, doc.Find("form").Length())
	assert.Equal(t, 1, doc.Find(".no-print button").Length())
}

func TestForm(t *testing.T) {
	var out bytes.Buffer
	values := FormValues{Name: "League", Teams: []string{"Team 1", "Team 2", "Team 3"}, Error: "too few"}
	require.NoError(t, Form("/schedule", values).Render(context.Background(), &out))

	doc, err := goquery.NewDocumentFromReader(&out)
	require.NoError(t, err)

	assert.Equal(t, "too few", doc.Find(".error").Text())
	count, _ := doc.Find("#count").Attr("value")
	assert.Equal(t, "3", count)
	inputs := doc.Find(`form[action="/schedule"] input[name="team"]`)
	require.Equal(t, 3, inputs.Length())
	id, _ := inputs.Last().Attr("id")
	assert.Equal(t, "team3", id)
}

func TestJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, JSON(&out, newTour(t, "Cup", "A", "B")))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))

	assert.Equal(t, "Cup", decoded["name"])
	assert.Equal(t, []any{"A", "B"}, decoded["teams"])
	assert.Equal(t, []any{map[string]any{
		"round":   float64(1),
		"matches": []any{map[string]any{"team1": "A", "team2": "B"}},
	}}, decoded["schedule"])
}
