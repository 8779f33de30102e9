package cli

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"
)

// startSpinner shows message with a spinner on w while a slow operation runs.
// It returns the function that stops it. Nothing is drawn unless w is a
// terminal and plain output is off.
func startSpinner(w io.Writer, message string, plain bool) (stop func()) {
	f, ok := w.(*os.File)
	if plain || !ok || !term.IsTerminal(int(f.Fd())) {
		return func() {}
	}

	s := spinner.New(spinner.CharSets[14], 80*time.Millisecond, spinner.WithWriter(f))
	s.Suffix = " " + message
	s.Start()
	return s.Stop
}
