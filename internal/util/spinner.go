package util

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

const SPIN = 31

var working = spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond, spinner.WithWriter(os.Stderr))

// StartSpinner shows the ~working~ spinner on stderr.
func StartSpinner() {
	working.Start()
}

// PauseSpinner hides the spinner until it is started again.
func PauseSpinner() {
	working.Stop()
}
