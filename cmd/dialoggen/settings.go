package main

import (
	"fmt"

	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/config"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/dialog"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/java"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/java/codebase"
	"github.com/spf13/cobra"
)

// settings are the flags shared by the commands that render dialogs.
// Flags given on the command line override dialoggen.yaml.
type settings struct {
	configPath  string
	sources     []string
	output      string
	format      string
	terminateOn []string
}

func (s *settings) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.configPath, "config", "c", config.DefaultFile, "configuration file")
	cmd.Flags().StringArrayVarP(&s.sources, "source", "s", nil, "descriptor directory (repeatable)")
	cmd.Flags().StringVarP(&s.output, "out", "o", "", "output directory")
	cmd.Flags().StringVarP(&s.format, "format", "f", "", "output format (xml, json)")
	cmd.Flags().StringSliceVar(&s.terminateOn, "terminate-on", nil, "diagnostic kinds that fail the build (all, none, kind, !kind)")
}

func (s *settings) load(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := config.Load(s.configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("source") {
		cfg.Sources = s.sources
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = s.output
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = s.format
	}
	if cmd.Flags().Changed("terminate-on") {
		cfg.TerminateOn = s.terminateOn
	}
	if len(args) > 0 {
		cfg.Components = args
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func openCodebase(cfg *config.Config) (*codebase.Codebase, error) {
	cb := codebase.New(cfg.Sources...)
	if err := cb.ScanAll(); err != nil {
		return nil, fmt.Errorf("scan sources: %w", err)
	}
	for path, err := range cb.Errors() {
		fmt.Printf("%s: %v\n", path, err)
	}
	return cb, nil
}

// selectComponents resolves the configured class names, or every class
// declaring a dialog when none are configured.
func selectComponents(idx *java.Index, cfg *config.Config) ([]*java.ClassModel, error) {
	if len(cfg.Components) == 0 {
		return dialog.Components(idx), nil
	}
	var result []*java.ClassModel
	for _, name := range cfg.Components {
		c := idx.Lookup(name)
		if c == nil {
			return nil, fmt.Errorf("class %q not found", name)
		}
		result = append(result, c)
	}
	return result, nil
}
