package main

import (
	cmdgenerate "driver-stats/command/generate"
	cmdweb "driver-stats/command/web"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Driver mileage report.
// Usage:
//   driver-stats              reads <base>/files/input/{drivers,timesheet}.csv and writes
//                             <base>/files/output/summary.csv and <base>/files/plots/top10_drivers.png
//   driver-stats web [-addr :8080] [-base .]
// <base> is the parent of the directory holding the binary unless config.yml sets base_dir.

func main() {
	args := os.Args
	level := slog.LevelInfo
	if strings.EqualFold(os.Getenv("LOG_LEVEL"), "debug") {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))

	if len(args) == 1 {
		exitOnError(cmdgenerate.Run(nil))
		return
	}
	sub := args[1]
	rest := append([]string{}, args[2:]...)
	switch sub {
	case "generate":
		exitOnError(cmdgenerate.Run(rest))
		return
	case "web":
		exitOnError(cmdweb.Run(rest))
		return
	}
	fmt.Fprintln(os.Stderr, "usage: driver-stats [generate] | web [-addr :8080] [-base .]\nENV: set CONFIG_PATH to point to a YAML config file (default ./config.yml)")
	os.Exit(2)
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
