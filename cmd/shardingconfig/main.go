package main

import (
	"os"

	"github.com/bacalhau-project/bacalhau-apiclient/pkg/commands"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := commands.NewApp().Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}
