// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command plotinteract replays scripted input against a scene of plot
// components described in a YAML file, and prints a trace of how every
// event was dispatched through the active tools, overlays, components,
// underlays and listener tools.
//
//	plotinteract run scene.yaml script.txt
//	plotinteract run --watch --only active,listener scene.yaml script.txt
//	plotinteract check scene.yaml script.txt
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/plotinteract/base/errors"
	"cogentcore.org/plotinteract/base/logx"
	"cogentcore.org/plotinteract/scenario"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// app holds the state shared by the commands.
type app struct {

	// cfg is the effective configuration.
	cfg *Config

	// flags receives the command line flag values.
	flags Config

	configFile string
}

func newRootCmd() *cobra.Command {
	a := &app{}
	a.flags = *DefaultConfig()
	root := &cobra.Command{
		Use:          "plotinteract",
		Short:        "Replay input against interactive plot components",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&a.configFile, "config", "c", "", "TOML config file (default "+DefaultConfigFile+" if present)")
	pf.BoolVarP(&a.flags.Verbose, "verbose", "v", false, "print info messages")
	pf.BoolVar(&a.flags.VeryVerbose, "vv", false, "print debug messages")
	pf.BoolVarP(&a.flags.Quiet, "quiet", "q", false, "only print errors")

	root.AddCommand(a.runCmd(), a.checkCmd())
	return root
}

// setup loads the config file, applies the flags and installs the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := DefaultConfig()
	if err := LoadConfig(cfg, a.configFile); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyFlags(cmd.Flags(), &a.flags, cfg)
	a.cfg = cfg
	logx.UserLevel = logx.LevelFromFlags(cfg.VeryVerbose, cfg.Verbose, cfg.Quiet)
	logx.SetDefaultLogger(cmd.ErrOrStderr())
	return nil
}

// files sets the scene and script from the positional arguments, which
// override the config file.
func (a *app) files(args []string) error {
	if len(args) > 0 {
		a.cfg.Scene = args[0]
	}
	if len(args) > 1 {
		a.cfg.Script = args[1]
	}
	if a.cfg.Scene == "" {
		return fmt.Errorf("no scene file given")
	}
	return nil
}

func (a *app) runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [scene.yaml] [script.txt]",
		Short: "Replay a script against a scene and print the dispatch trace",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.files(args); err != nil {
				return err
			}
			if a.cfg.Script == "" {
				return fmt.Errorf("no script file given")
			}
			out := cmd.OutOrStdout()
			err := a.replay(out)
			if !a.cfg.Watch {
				return err
			}
			errors.Log(err)
			return watch(cmd.Context(), []string{a.cfg.Scene, a.cfg.Script}, func() {
				fmt.Fprintln(out)
				errors.Log(a.replay(out))
			})
		},
	}
	bindFlags(cmd.Flags(), &a.flags)
	return cmd
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check scene.yaml [script.txt]",
		Short: "Check that a scene and script are valid without replaying",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.files(args); err != nil {
				return err
			}
			b, err := build(a.cfg.Scene)
			if err != nil {
				return err
			}
			msg := fmt.Sprintf("%s: %d components", a.cfg.Scene, len(b.Paths()))
			if a.cfg.Script != "" {
				steps, err := readScript(a.cfg.Script)
				if err != nil {
					return err
				}
				msg += fmt.Sprintf(", %s: %d steps", a.cfg.Script, len(steps))
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}

func build(filename string) (*scenario.Built, error) {
	f, err := scenario.Open(filename)
	if err != nil {
		return nil, err
	}
	b, err := scenario.Build(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return b, nil
}

func readScript(filename string) ([]*scenario.Step, error) {
	fr, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fr.Close()
	steps, err := scenario.ParseScript(fr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return steps, nil
}

// replay builds the scene, replays the script and prints the trace.
// Handler failures are printed with the trace and returned.
func (a *app) replay(w io.Writer) error {
	b, err := build(a.cfg.Scene)
	if err != nil {
		return err
	}
	steps, err := readScript(a.cfg.Script)
	if err != nil {
		return err
	}
	p, err := newPrinter(w, a.cfg.Only)
	if err != nil {
		return err
	}
	slog.Info("replaying", "scene", a.cfg.Scene, "script", a.cfg.Script, "steps", len(steps))
	results, rerr := scenario.NewRunner(b).Run(steps)
	for _, res := range results {
		p.result(res)
	}
	if a.cfg.Status {
		p.status(b.Status())
	}
	return rerr
}
