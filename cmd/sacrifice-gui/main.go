package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/diegok/sacrifice/internal/config"
	"github.com/diegok/sacrifice/internal/gui"
)

func main() {
	cfg, err := config.Parse("sacrifice-gui", os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := gui.Run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
