package util

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphanumCompare(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"week-2", "week-10", true},
		{"week-10", "week-2", false},
		{"alpha", "Beta", true},
		{"cup", "cup-2", true},
		{"cup-2", "cup", false},
		{"same", "same", false},
		{"10", "9", false},
	}

	for _, c := range cases {
		if got := AlphanumCompare(c.a, c.b); got != c.want {
			t.Errorf("AlphanumCompare(%q, %q) = %v; want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestAlphanumSort(t *testing.T) {
	names := []string{"league-10", "league-1", "Cup", "league-2"}
	sort.Slice(names, func(i, j int) bool {
		return AlphanumCompare(names[i], names[j])
	})

	assert.Equal(t, []string{"Cup", "league-1", "league-2", "league-10"}, names)
}

func TestPrinterCommand(t *testing.T) {
	t.Setenv(PrinterEnv, "")
	command, args := PrinterCommand()
	assert.Equal(t, DefaultPrinter, command)
	assert.Empty(t, args)

	t.Setenv(PrinterEnv, "lpr -P office")
	command, args = PrinterCommand()
	assert.Equal(t, "lpr", command)
	assert.Equal(t, []string{"-P", "office"}, args)
}

func TestPrint(t *testing.T) {
	t.Setenv(PrinterEnv, "cat")
	require.NoError(t, Print(context.Background(), strings.NewReader("Round 1\n")))

	t.Setenv(PrinterEnv, "false")
	err := Print(context.Background(), strings.NewReader("Round 1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Printer")
}
