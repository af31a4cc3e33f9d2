package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cinerow/cinerow/constant"
	"github.com/cinerow/cinerow/icon"
	"github.com/cinerow/cinerow/log"
	"github.com/cinerow/cinerow/player"
	"github.com/cinerow/cinerow/style"
)

// dependency is an external program the mpv backend shells out to.
type dependency struct {
	binary string
	// required dependencies abort startup, the rest only warn
	required bool
	install  map[string]string
}

var mpvDependencies = []dependency{
	{
		binary:   "mpv",
		required: true,
		install: map[string]string{
			"darwin":  "brew install mpv",
			"linux":   "sudo apt install mpv",
			"windows": "scoop install mpv",
		},
	},
	{
		// mpv resolves YouTube watch URLs through yt-dlp
		binary: "yt-dlp",
		install: map[string]string{
			"darwin":  "brew install yt-dlp",
			"linux":   "pipx install yt-dlp",
			"windows": "scoop install yt-dlp",
		},
	},
}

// missingDependencies returns the dependencies lookPath cannot find.
func missingDependencies(deps []dependency, lookPath func(string) (string, error)) (missing []dependency) {
	for _, d := range deps {
		if _, err := lookPath(d.binary); err != nil {
			missing = append(missing, d)
		}
	}
	return
}

// CheckDependencies exits when mpv is not on PATH and warns about yt-dlp.
func CheckDependencies() {
	for _, d := range missingDependencies(mpvDependencies, exec.LookPath) {
		if !d.required {
			log.Warnf("%s not found in PATH, mpv may fail to open YouTube links", d.binary)
			continue
		}
		fmt.Println(missingDependencyBox(d, runtime.GOOS))
		os.Exit(1)
	}
}

func missingDependencyBox(d dependency, goos string) string {
	accent := style.New().Foreground(style.AccentColor).Bold(true).Render

	var b strings.Builder
	b.WriteString(style.New().Foreground(style.Text).Render(
		fmt.Sprintf("%s is required by the mpv player backend but was not found in PATH.", d.binary),
	))
	if cmd, ok := d.install[goos]; ok {
		b.WriteString("\n\nInstall it with:\n  " + accent(cmd))
	}
	b.WriteString("\n\nOr open trailers in the browser:\n  " + accent(constant.App+" --player "+player.BackendBrowser))

	title := style.New().Bold(true).Foreground(style.HiRed).Render(icon.Get(icon.Fail) + " Missing dependency")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.HiRed).
		Padding(1, 2).
		Margin(1, 0).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, "", b.String()))
}
