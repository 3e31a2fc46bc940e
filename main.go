package main

import (
	"errors"
	"os"

	"github.com/alecthomas/kong"
	kongcompletion "github.com/jotaen/kong-completion"

	"github.com/zendesk/snowcrash/cmd"
	"github.com/zendesk/snowcrash/internal/specterrs"
)

func main() {
	cli := &cmd.CLI{}
	parser := kong.Must(cli,
		kong.Name("snowcrash"),
		kong.Description("API Blueprint parser"),
		kong.UsageOnError(),
	)

	kongcompletion.Register(parser,
		kongcompletion.WithPredictor("file", cmd.PredictBlueprintFiles()),
		kongcompletion.WithPredictor("format", cmd.PredictFormat()),
	)

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	runErr := ctx.Run()

	var exitErr *specterrs.ExitCodeError
	if errors.As(runErr, &exitErr) {
		os.Exit(exitErr.Code)
	}

	ctx.FatalIfErrorf(runErr)
}
