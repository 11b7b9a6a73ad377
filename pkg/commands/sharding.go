package commands

import (
	"encoding/json"
	"fmt"
	"io"

	client "github.com/bacalhau-project/bacalhau-apiclient/pkg/client/generated/job/v1"
	"github.com/bacalhau-project/bacalhau-apiclient/pkg/schemas"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"sigs.k8s.io/yaml"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatText = "text"
)

func RenderCommand() cli.Command {
	return cli.Command{
		Name:  "render",
		Usage: "Build a sharding config from flags and print it",
		Flags: []cli.Flag{
			cli.Int64Flag{
				Name:  "batch-size",
				Usage: "Number of matched items grouped into one shard",
			},
			cli.StringFlag{
				Name:  "glob-pattern",
				Usage: "Pattern applied to the inputs, an empty value disables sharding",
			},
			cli.StringFlag{
				Name:  "glob-pattern-base-path",
				Usage: "Common mount path the glob pattern is evaluated against",
			},
			outputFlag,
		},
		Action: render,
	}
}

func ParseCommand() cli.Command {
	return cli.Command{
		Name:      "parse",
		Usage:     "Read a sharding config as JSON or YAML and print it",
		ArgsUsage: "[FILE]",
		Flags:     []cli.Flag{outputFlag},
		Action:    parse,
	}
}

func SchemaCommand() cli.Command {
	return cli.Command{
		Name:   "schema",
		Usage:  "Print the API schema of the sharding config",
		Action: schema,
	}
}

func render(c *cli.Context) error {
	var opts []client.JobShardingConfigOption
	if c.IsSet("batch-size") {
		opts = append(opts, client.WithBatchSize(c.Int64("batch-size")))
	}
	if c.IsSet("glob-pattern") {
		opts = append(opts, client.WithGlobPattern(c.String("glob-pattern")))
	}
	if c.IsSet("glob-pattern-base-path") {
		opts = append(opts, client.WithGlobPatternBasePath(c.String("glob-pattern-base-path")))
	}
	config := client.NewJobShardingConfig(opts...)

	logrus.WithField("fields", len(opts)).Debug("Rendering sharding config")
	return write(c.App.Writer, config, outputFormat(c))
}

func parse(c *cli.Context) error {
	in := stdin
	source := "stdin"
	if path := c.Args().First(); path != "" && path != "-" {
		f, err := openFile(path)
		if err != nil {
			return errors.Wrapf(err, "opening %s", path)
		}
		defer f.Close()
		in = f
		source = path
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return errors.Wrapf(err, "reading %s", source)
	}

	values := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return errors.Wrapf(err, "decoding %s", source)
	}

	config, err := client.JobShardingConfigFromMap(values)
	if err != nil {
		return errors.Wrapf(err, "decoding %s", source)
	}

	logrus.WithField("source", source).Debugf("Parsed sharding config %v", config.ToMap())
	return write(c.App.Writer, config, outputFormat(c))
}

func schema(c *cli.Context) error {
	s, err := schemas.JobShardingConfig()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.ResourceFields, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, string(data))
	return err
}

func write(w io.Writer, config *client.JobShardingConfig, format string) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(config, "", "  ")
		data = append(data, '\n')
	case FormatYAML:
		data, err = yaml.Marshal(config)
	case FormatText:
		data = []byte(config.String() + "\n")
	default:
		return errors.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return errors.Wrapf(err, "encoding %s", format)
	}
	_, err = w.Write(data)
	return err
}
