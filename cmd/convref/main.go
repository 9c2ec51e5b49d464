// Copyright ©2024 The GUDA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command convref validates an accelerator output dump against the
// convolution reference model.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/LynnColeArt/convref"
)

// Exit codes
const (
	exitOK       = 0
	exitMismatch = 1
	exitUsage    = 2
	exitIO       = 3
)

// app carries the process environment into the commands.
type app struct {
	stdout io.Writer
	stderr io.Writer

	// onExit registers cleanups that must run when the process ends,
	// after the final report has been written.
	onExit func(func())
}

func (a *app) logger() *log.Logger {
	return log.New(a.stdout, "", 0)
}

func main() {
	// A .env file is optional; its variables only provide defaults.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("convref: ignoring .env: %v", err)
	}

	a := &app{
		stdout: os.Stdout,
		stderr: os.Stderr,
		onExit: func(f func()) { atexit.Register(f) },
	}
	atexit.Exit(a.run(os.Args[1:]))
}

// run executes the command line and returns the process exit code.
func (a *app) run(args []string) int {
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	err := root.Execute()
	if err == nil {
		return exitOK
	}
	fmt.Fprintf(a.stderr, "convref: %v\n", err)
	return exitCode(err)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case convref.IsMismatchError(err), convref.IsErrorCapExceeded(err):
		return exitMismatch
	case convref.IsIOError(err):
		return exitIO
	}
	return exitUsage
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "convref",
		Short:         "Reference model and comparator for the 2D convolution accelerator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "config file (yaml, toml or json) with run parameters")

	root.AddCommand(
		newCheckCmd(a),
		newImageCmd(a),
		newDotCmd(a),
		newVersionCmd(a),
	)
	return root
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the convref version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			version, sum := convref.Version()
			if version == "" {
				version = "(devel)"
			}
			fmt.Fprintln(a.stdout, "convref", version, sum)
			return nil
		},
	}
}
