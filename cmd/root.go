// Package cmd provides the snowcrash command-line interface: a thin
// Kong struct-of-subcommands over the parser, serializer, and config
// packages.
package cmd

import (
	kongcompletion "github.com/jotaen/kong-completion"
)

// CLI is the root command structure for Kong.
type CLI struct {
	Parse      ParseCmd                  `cmd:"" default:"withargs" help:"Parse an API Blueprint document"`
	Version    VersionCmd                `cmd:"" help:"Show version info"`
	Completion kongcompletion.Completion `cmd:"" help:"Generate shell completion scripts"`
}
