package commands

import (
	"io"
	"os"

	"github.com/bacalhau-project/bacalhau-apiclient/pkg/settings"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var (
	stdin    io.Reader = os.Stdin
	openFile           = func(path string) (io.ReadCloser, error) {
		return os.Open(path)
	}
)

func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "shardingconfig"
	app.Usage = "Build, inspect and convert job sharding configs"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:   "debug",
			Usage:  "Enable debug logging",
			EnvVar: "BACALHAU_DEBUG",
		},
	}
	app.Before = before
	app.Commands = []cli.Command{
		RenderCommand(),
		ParseCommand(),
		SchemaCommand(),
	}
	return app
}

func before(c *cli.Context) error {
	if err := settings.SetProvider(settings.NewEnvProvider()); err != nil {
		return err
	}

	if c.GlobalBool("debug") {
		logrus.SetLevel(logrus.DebugLevel)
		return nil
	}

	level, err := logrus.ParseLevel(settings.LogLevel.Get())
	if err != nil {
		return errors.Wrapf(err, "invalid %s setting", settings.LogLevel.Name)
	}
	logrus.SetLevel(level)
	return nil
}

func outputFormat(c *cli.Context) string {
	if format := c.String("output"); format != "" {
		return format
	}
	return settings.OutputFormat.Get()
}

var outputFlag = cli.StringFlag{
	Name:  "output, o",
	Usage: "Output format: json, yaml or text (defaults to the output-format setting)",
}
