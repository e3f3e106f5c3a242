// Package main is the entry point for the picsan application.
package main

import (
	"github.com/picsan-cli/picsan/cmd"
	"github.com/picsan-cli/picsan/config"
	"github.com/picsan-cli/picsan/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
