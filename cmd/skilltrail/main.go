package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/skilltrail/skilltrail/internal/infrastructure/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		var cliErr *cli.CLIError
		if errors.As(err, &cliErr) && cliErr.Hint != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", cliErr.Hint)
			os.Exit(cliErr.ExitCode)
		}
		os.Exit(1)
	}
}
