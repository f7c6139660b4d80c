package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"goxviet/internal/app"
	"goxviet/internal/cli"
	"goxviet/internal/config"
)

func main() {
	opts, err := cli.Parse(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "goxviet: %v\n", err)
		os.Exit(1)
	}

	if opts.ShowHelp {
		fmt.Println(cli.Usage())
		return
	}

	if opts.ListPresets {
		for _, name := range config.PresetNames() {
			fmt.Println(name)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err := app.NewRuntime(opts).Run(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "goxviet: %v\n", err)
		os.Exit(1)
	}
}
