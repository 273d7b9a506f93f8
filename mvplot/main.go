// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command mvplot plots the results of multivariate models.
//
// Usage:
//
//	mvplot [-cpuprofile file] [-memprofile file] <subcommand> [flags] <args>
//
// The plot subcommand reads PCA, PCR, PLS1 or PLS2 results exported
// by the modeling library and writes one SVG file per figure. The smi
// subcommand draws the diamond plot of a similarity of matrices index.
// The batch subcommand runs a script of subcommands.
//
// Model and SMI results are YAML or JSON files. Data tables given
// with -x, -y, -newx and -newy are tab-delimited, with row names in
// the first column and column names in the first row.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
)

// errUsage is returned by subcommands that printed their usage.
var errUsage = errors.New("bad usage")

type subcommand struct {
	name, desc string
	run        func(args []string) error
}

var subcommands []*subcommand

func registerSubcommand(name, desc string, run func(args []string) error) {
	subcommands = append(subcommands, &subcommand{name, desc, run})
}

func main() {
	log.SetPrefix("mvplot: ")
	log.SetFlags(0)

	var (
		flagCPUProfile = flag.String("cpuprofile", "", "write CPU profile to `file`")
		flagMemProfile = flag.String("memprofile", "", "write heap profile to `file`")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <subcommand> ...\n\nSubcommands:\n", os.Args[0])
		for _, sub := range subcommands {
			fmt.Fprintf(os.Stderr, "  %s %s\n", sub.name, sub.desc)
		}
		fmt.Fprintf(os.Stderr, "\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
	}

	err := runSubcommand(flag.Args())

	if *flagCPUProfile != "" {
		pprof.StopCPUProfile()
	}
	if *flagMemProfile != "" {
		runtime.GC()
		f, err := os.Create(*flagMemProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}

	if errors.Is(err, errUsage) {
		os.Exit(2)
	} else if err != nil {
		log.Fatal(err)
	}
}

// runSubcommand runs the subcommand named by args[0] with the rest of
// args.
func runSubcommand(args []string) error {
	for _, sub := range subcommands {
		if sub.name == args[0] {
			return sub.run(args[1:])
		}
	}
	fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", args[0])
	flag.Usage()
	return errUsage
}

// newFlagSet returns a flag set for subcommand name. Each run of a
// subcommand gets fresh flags so batch scripts start from the
// defaults.
func newFlagSet(name, args string) *flag.FlagSet {
	f := flag.NewFlagSet(os.Args[0]+" "+name, flag.ContinueOnError)
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s %s %s\n", os.Args[0], name, args)
		f.PrintDefaults()
	}
	return f
}

// parseFlags parses args with f. It returns errUsage if args are
// invalid, since f has already reported the problem.
func parseFlags(f *flag.FlagSet, args []string) error {
	if err := f.Parse(args); err != nil {
		return errUsage
	}
	return nil
}
