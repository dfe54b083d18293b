package main

import (
	"fmt"
	"os"

	"github.com/enescakir/emoji"
	"github.com/gimlet-io/gerrit-slack/pkg/commands/render"
	"github.com/gimlet-io/gerrit-slack/pkg/version"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:                 "gerrit-slack-cli",
		Version:              version.String(),
		Usage:                "renders and publishes Slack messages of Gerrit events",
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			&render.Command,
		},
	}
	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", emoji.CrossMark, err.Error())
		os.Exit(1)
	}
}
