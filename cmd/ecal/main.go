package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"ecal/internal/app"
	"ecal/internal/config"
	"ecal/internal/log"
)

func main() {
	fs := pflag.NewFlagSet("ecal", pflag.ContinueOnError)
	fs.Usage = func() { printUsage(fs) }
	config.Flags(fs)
	debug := fs.Bool("debug", false, "verbose diagnostics on stderr")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *debug {
		log.SetLevel(log.LevelDebug)
	}

	now := time.Now()
	cfg, err := config.Load(fs, now)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := app.Run(cfg, now, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printUsage(fs *pflag.FlagSet) {
	fmt.Fprintln(os.Stderr, "ecal - terminal calendar with rule-based events")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage: ecal [OPTIONS]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, fs.FlagUsages())
	fmt.Fprintln(os.Stderr, "Event file lines look like:")
	fmt.Fprintln(os.Stderr, "  12/25 ;[holiday, red,] Christmas")
	fmt.Fprintln(os.Stderr, "  E+1 ; Easter Monday")
	fmt.Fprintln(os.Stderr, "  5/1#1 ; First Monday of May")
	fmt.Fprintln(os.Stderr, "  03/14/2020 ;[bday,,] Ada")
}
