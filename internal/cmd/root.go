// Package cmd implements the pickship command-line interface.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pickship/config"
	"github.com/guttosm/pickship/internal/app"
	"github.com/guttosm/pickship/internal/service"
	"github.com/spf13/cobra"
)

// CommandFactory builds commands with injectable collaborators.
type CommandFactory struct {
	LoadConfig func() config.Config
	NewPacker  func(cfg config.Config) service.ManifestPacker
	NewApp     func(cfg config.Config) (*gin.Engine, func())
	Stdout     io.Writer
	Stderr     io.Writer
}

var defaultCommandFactory = CommandFactory{
	LoadConfig: config.Load,
	NewPacker:  newPacker,
	NewApp:     app.InitializeApp,
	Stdout:     os.Stdout,
	Stderr:     os.Stderr,
}

// newPacker builds an uncached packer; a single CLI run never repeats a pack.
func newPacker(cfg config.Config) service.ManifestPacker {
	return service.NewPackerService(service.WithCapacity(cfg.Packing.Capacity))
}

// CreateRootCommand returns the root command with the serve subcommand attached.
func (f CommandFactory) CreateRootCommand(flgs *Flags) *cobra.Command {
	root := &cobra.Command{
		Use:   "pickship [flags] <inventory> <order>",
		Short: "Pack an order into weight-limited boxes and print a pick-ship report",
		Long: `pickship reads an inventory document and an order document, packs the
ordered items into boxes no heavier than --capacity using first-fit
descending, and prints the resulting pick-ship report.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := f.resolveConfig(cmd, flgs)
			f.initLogger(cfg)
			return f.runPack(cfg, flgs.Output, args[0], args[1])
		},
	}
	root.SetOut(f.Stdout)
	root.SetErr(f.Stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&flgs.LogLevel, flagMap.LogLevel.Name, flagMap.LogLevel.Value, flagMap.LogLevel.Usage)
	pf.BoolVar(&flgs.LogPretty, flagMap.LogPretty.Name, flagMap.LogPretty.Value, flagMap.LogPretty.Usage)
	pf.Float64Var(&flgs.Capacity, flagMap.Capacity.Name, flagMap.Capacity.Value, flagMap.Capacity.Usage)
	root.Flags().StringVarP(&flgs.Output, flagMap.Output.Name, "o", flagMap.Output.Value, flagMap.Output.Usage)

	root.AddCommand(f.CreateServeCommand(flgs))
	return root
}

// resolveConfig loads the environment configuration and applies explicitly set flags.
func (f CommandFactory) resolveConfig(cmd *cobra.Command, flgs *Flags) config.Config {
	cfg := f.LoadConfig()
	if cfg.Packing.Capacity == 0 {
		cfg.Packing.Capacity = service.DefaultCapacity
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = flagMap.LogLevel.Value
	}
	if cfg.Server.Port == "" {
		cfg.Server.Port = flagMap.Port.Value
	}

	fs := cmd.Flags()
	if fs.Changed(flagMap.Capacity.Name) {
		cfg.Packing.Capacity = flgs.Capacity
	}
	if fs.Changed(flagMap.LogLevel.Name) {
		cfg.Log.Level = flgs.LogLevel
	}
	if fs.Changed(flagMap.LogPretty.Name) {
		cfg.Log.Pretty = flgs.LogPretty
	}
	if fs.Changed(flagMap.Port.Name) {
		cfg.Server.Port = flgs.Port
	}
	return cfg
}

var flgs = &Flags{}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	root := defaultCommandFactory.CreateRootCommand(flgs)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "pickship:", err)
		os.Exit(1)
	}
}
