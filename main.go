// Package main is the entry point for the cinerow application.
package main

import (
	"github.com/cinerow/cinerow/cmd"
	"github.com/cinerow/cinerow/config"
	"github.com/cinerow/cinerow/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	go cmd.CollectGarbage()

	cmd.Execute()
}
