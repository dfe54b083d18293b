package render

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/enescakir/emoji"
	"github.com/fatih/color"
	"github.com/gimlet-io/gerrit-slack/pkg/gerrit"
	"github.com/gimlet-io/gerrit-slack/pkg/notifications"
	"github.com/urfave/cli/v2"
)

var Command = cli.Command{
	Name:  "render",
	Usage: "Renders the Slack message of a Gerrit event",
	UsageText: `gerrit-slack-cli render \
     --event patchset-created.json \
     --config projects.yaml \
     --publish`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "event",
			Aliases:  []string{"e"},
			Usage:    "Gerrit stream event json file, - reads stdin",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "config",
			Aliases:  []string{"c"},
			Usage:    "yaml file with the project configs",
			Required: true,
		},
		&cli.BoolFlag{
			Name:  "publish",
			Usage: "Posts the rendered message to the webhook of the project",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Webhook timeout",
			Value: 10 * time.Second,
		},
	},
	Action: render,
}

func render(c *cli.Context) error {
	raw, err := readEvent(c.String("event"))
	if err != nil {
		return err
	}

	event, err := gerrit.Parse(raw)
	if err != nil {
		return err
	}

	configs, err := LoadConfigs(c.String("config"))
	if err != nil {
		return err
	}

	project := ""
	if change := gerrit.ChangeOf(event); change != nil {
		project = change.Project
	}
	config, err := configs.ProjectConfig(project)
	if err != nil {
		return err
	}

	generator, err := notifications.NewGenerator(event, config)
	if err != nil {
		return err
	}

	yellow := color.New(color.FgYellow).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	decision := generator.Decide()
	for _, degraded := range decision.Degraded {
		fmt.Fprintf(os.Stderr, "%v %s\n", emoji.Warning, yellow(degraded.Error()))
	}
	if !decision.Publish {
		fmt.Printf("%v %s %s\n", emoji.CrossMark, event.Kind(), gray("suppressed by "+decision.SuppressedBy))
		return nil
	}

	payload := generator.Generate()
	if payload == "" {
		return fmt.Errorf("could not render %s message", event.Kind())
	}
	fmt.Printf("%v %s %s\n", emoji.CheckMark, event.Kind(), green("would be published"))
	fmt.Println(payload)

	if !c.Bool("publish") {
		return nil
	}

	publisher := notifications.NewWebhookPublisher(c.Duration("timeout"))
	err = publisher.Publish(context.Background(), payload, config.WebhookURL)
	if err != nil {
		return err
	}
	fmt.Printf("%v published to #%s\n", emoji.BackhandIndexPointingRight, config.Channel)

	return nil
}

func readEvent(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read event file: %s", err)
	}
	return raw, nil
}
