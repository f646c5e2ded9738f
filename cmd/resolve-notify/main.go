package main

import (
	"os"

	"github.com/brixybrice/Resolve-job-notification/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
