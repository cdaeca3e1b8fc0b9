// Package main is the entry point for eprange.
package main

import (
	"github.com/anisan-cli/eprange/cmd"
	"github.com/anisan-cli/eprange/config"
	"github.com/anisan-cli/eprange/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
