// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kballard/go-shellquote"
)

func init() {
	registerSubcommand("batch", "<script> - run the subcommands in script", cmdBatch)
}

func cmdBatch(args []string) error {
	f := newFlagSet("batch", "<script>")
	if err := parseFlags(f, args); err != nil {
		return err
	}
	if f.NArg() != 1 {
		f.Usage()
		return errUsage
	}
	path := f.Arg(0)
	r, err := os.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()
	cmds, err := parseScript(r)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	status := newStatusReporter()
	defer status.Stop()
	for i, cmd := range cmds {
		if cmd.args[0] == "batch" {
			return fmt.Errorf("%s:%d: batch scripts cannot run batch", path, cmd.line)
		}
		status.Progress(fmt.Sprintf("[%d/%d] %s", i+1, len(cmds), shellquote.Join(cmd.args...)), float64(i)/float64(len(cmds)))
		if err := runSubcommand(cmd.args); err != nil {
			return fmt.Errorf("%s:%d: %w", path, cmd.line, err)
		}
	}
	return nil
}

// A scriptCmd is one subcommand invocation in a batch script.
type scriptCmd struct {
	line int
	args []string
}

// parseScript splits each line of a batch script into words using
// shell quoting rules. Blank lines and lines starting with # are
// skipped.
func parseScript(r io.Reader) ([]scriptCmd, error) {
	var cmds []scriptCmd
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args, err := shellquote.Split(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if len(args) == 0 {
			continue
		}
		cmds = append(cmds, scriptCmd{lineNo, args})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cmds, nil
}
