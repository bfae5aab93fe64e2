package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/diegok/sacrifice/internal/app"
	"github.com/diegok/sacrifice/internal/config"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		printUsage("sacrifice")
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage("sacrifice")
		os.Exit(1)
	}

	application := app.NewApp(cfg)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage(name string) {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintf(os.Stderr, "  %s [options]\n", name)
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --fps <n>           Frames per second (default: 60)")
	fmt.Fprintln(os.Stderr, "  --max-dt <dur>      Longest time step per frame (default: 50ms)")
	fmt.Fprintln(os.Stderr, "  --seed <n>          Random seed for serves (default: time based)")
	fmt.Fprintln(os.Stderr, "  --mute              Disable sound")
	fmt.Fprintln(os.Stderr, "  --debug             Write a log file")
	fmt.Fprintln(os.Stderr, "  --log-file <path>   Log file (default: logs/sacrifice.log)")
	fmt.Fprintln(os.Stderr, "  --config <path>     TOML settings file")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Keys:")
	fmt.Fprintln(os.Stderr, "  W/S                 Left paddle")
	fmt.Fprintln(os.Stderr, "  Up/Down             Right paddle")
	fmt.Fprintln(os.Stderr, "  Space               Pause")
	fmt.Fprintln(os.Stderr, "  R                   Restart the match")
	fmt.Fprintln(os.Stderr, "  Enter               New match once one is won")
	fmt.Fprintln(os.Stderr, "  Esc/Q               Quit")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintf(os.Stderr, "  %s --mute\n", name)
	fmt.Fprintf(os.Stderr, "  %s --debug --seed 42\n", name)
	fmt.Fprintf(os.Stderr, "  %s --config ~/.config/sacrifice.toml\n", name)
}
