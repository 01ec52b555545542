package errhandler

import (
	"errors"
	"os"
	"strings"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
)

// HandleError prints a command error and exits. A prompt interrupt (ctrl-c
// in an interactive form) counts as a cancellation, not a failure.
func HandleError(err error) {
	if errors.Is(err, terminal.InterruptErr) || errors.Is(err, huh.ErrUserAborted) || strings.Contains(err.Error(), "interrupt") {
		pterm.Warning.Println("Operation Cancelled")
		os.Exit(0)
	}

	pterm.Error.Println(capitalize(err.Error()))
	os.Exit(1)
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
