// Package util provides small helpers shared by the CLI and the TUI.
package util

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/cinerow/cinerow/filesystem"
	"github.com/samber/lo"
	"golang.org/x/term"
)

// Quantify formats count with the matching noun, e.g. "1 response", "3 responses".
func Quantify(count int, singular, plural string) string {
	return fmt.Sprintf("%d %s", count, lo.Ternary(count == 1, singular, plural))
}

func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// TerminalSize reports the size of the terminal attached to stdout.
func TerminalSize() (width, height int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// PrintErasable writes msg to stdout without a newline and returns a func
// that blanks it out again.
func PrintErasable(msg string) (erase func()) {
	return printErasable(os.Stdout, msg)
}

func printErasable(w io.Writer, msg string) func() {
	_, _ = fmt.Fprint(w, "\r"+msg)
	blank := strings.Repeat(" ", lipgloss.Width(msg))
	return func() {
		_, _ = fmt.Fprint(w, "\r"+blank+"\r")
	}
}

// Ignore drops the error of a deferred Close and the like.
func Ignore(f func() error) {
	_ = f()
}

// Delete removes path, recursively for directories. A missing path is an error.
func Delete(path string) error {
	fs := filesystem.API()
	if _, err := fs.Stat(path); err != nil {
		return err
	}
	return fs.RemoveAll(path)
}
