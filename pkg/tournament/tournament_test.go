package tournament

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/roundrobin/pkg/schedule"
)

func TestNames(t *testing.T) {
	got := Names([]string{"  Lions ", "", "\t", "Lions"})
	assert.Equal(t, []string{"Lions", "Team 2", "Team 3", "Lions"}, got)
}

func TestFill(t *testing.T) {
	cases := []struct {
		name  string
		raw   []string
		count int
		want  []string
	}{
		{"keep", []string{"A", "B"}, 0, []string{"A", "B"}},
		{"pad", []string{"A"}, 3, []string{"A", "Team 2", "Team 3"}},
		{"truncate", []string{"A", "B", "C"}, 2, []string{"A", "B"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Names(Fill(c.raw, c.count)))
		})
	}
}

func TestNew(t *testing.T) {
	tour, err := New("  ", []string{"A", " ", "C"})
	require.NoError(t, err)

	assert.Equal(t, DefaultName, tour.Name)
	assert.Equal(t, []string{"A", "Team 2", "C"}, tour.Teams)
	assert.Len(t, tour.Schedule, 3)
	assert.Equal(t, 3, tour.Schedule.Matches())
}

func TestNewInvalid(t *testing.T) {
	_, err := New("Solo", []string{"A"})
	require.ErrorIs(t, err, schedule.ErrInvalidInput)
}

func TestParseConfig(t *testing.T) {
	config, err := ParseConfig([]byte(strings.TrimSpace(`
name: Autumn League
count: 4
teams:
  - Lions
  - Tigers
`)))
	require.NoError(t, err)

	assert.Equal(t, "Autumn League", config.Name)
	assert.Equal(t, []string{"Lions", "Tigers", "Team 3", "Team 4"}, config.Participants())
}

func TestParseConfigPlainText(t *testing.T) {
	config, err := ParseConfig([]byte("Lions\n\n# comment\nTigers\n  Bears  \n"))
	require.NoError(t, err)

	assert.Empty(t, config.Name)
	assert.Equal(t, []string{"Lions", "Tigers", "Bears"}, config.Participants())
}

func TestParseConfigNameOnly(t *testing.T) {
	config, err := ParseConfig([]byte("name: League\n"))
	require.NoError(t, err)

	assert.Equal(t, "League", config.Name)
	assert.Empty(t, config.Teams)
	assert.Empty(t, config.Participants())
}

func TestParseConfigSingleName(t *testing.T) {
	config, err := ParseConfig([]byte("Lions\n"))
	require.NoError(t, err)

	assert.Empty(t, config.Name)
	assert.Equal(t, []string{"Lions"}, config.Teams)
}

func TestParseConfigBadMapping(t *testing.T) {
	_, err := ParseConfig([]byte("teams: {a: b}\n"))
	require.Error(t, err)
}

func TestReadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte("teams: [A, B]\n"), 0644))

	config, err := ReadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, config.Teams)

	_, err = ReadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
