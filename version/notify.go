package version

import (
	"fmt"

	"github.com/cinerow/cinerow/color"
	"github.com/cinerow/cinerow/constant"
	"github.com/cinerow/cinerow/icon"
	"github.com/cinerow/cinerow/key"
	"github.com/cinerow/cinerow/log"
	"github.com/cinerow/cinerow/style"
	"github.com/cinerow/cinerow/util"
	"github.com/spf13/viper"
)

// Notify prints an upgrade notice when a newer release exists.
// It stays silent when the check is disabled or fails.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(icon.Get(icon.Progress) + " Checking for a newer release...")
	latest, err := Latest()
	erase()
	if err != nil {
		log.Debugf("version check: %v", err)
		return
	}

	if msg, ok := notice(latest, constant.Version); ok {
		fmt.Print(msg)
	}
}

func notice(latest, current string) (string, bool) {
	newer, err := Compare(latest, current)
	if err != nil {
		log.Debugf("version check: %v", err)
		return "", false
	}
	if newer <= 0 {
		return "", false
	}

	return fmt.Sprintf("\n%s %s %s is out %s\n%s\n\n",
		style.Fg(color.Green)(icon.Get(icon.Star)),
		constant.App,
		style.Bold(latest),
		style.Faint("(you have "+current+")"),
		style.Faint(constant.Repository+"/releases/tag/v"+latest),
	), true
}
