package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	bikeshare "github.com/theoremus-urban-solutions/bikeshare-stats"
	"github.com/theoremus-urban-solutions/bikeshare-stats/config"
	"github.com/theoremus-urban-solutions/bikeshare-stats/internal/logging"
)

func newRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "bikeshare",
		Short: "Explore US bike-share trip statistics",
		Long: `bikeshare asks for a city (Chicago, New York City or Washington), a month
and a day of week, then prints the most popular travel times, stations, trip
durations and user demographics for the matching trips.

Trip files and the city list are taken from config.yml when present.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadAppConfig()
			if err != nil {
				return err
			}
			if cfg.Logging.Verbose {
				logging.InitLogging(errOut)
			} else {
				logging.InitLogging(io.Discard)
			}
			return bikeshare.NewSession(cfg, in, out).Run(cmd.Context())
		},
	}
}

func main() {
	cmd := newRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
