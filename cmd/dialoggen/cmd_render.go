package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/config"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/diag"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/dialog"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/format"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/java"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/target"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	var s settings

	cmd := &cobra.Command{
		Use:   "render [class...]",
		Short: "Render the dialogs of the given classes, or of every component",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := s.load(cmd, args)
			if err != nil {
				return err
			}
			cb, err := openCodebase(cfg)
			if err != nil {
				return err
			}
			return renderAll(cb.Index(), cfg)
		},
	}
	s.register(cmd)

	return cmd
}

// renderAll writes one dialog per selected class. A class failing the
// diagnostics policy is still written; its error is reported at the end.
func renderAll(idx *java.Index, cfg *config.Config) error {
	classes, err := selectComponents(idx, cfg)
	if err != nil {
		return err
	}

	var errs []error
	for _, c := range classes {
		policy := diag.NewPolicy(cfg.TerminateOn)
		root, buildErr := dialog.Build(idx, c, policy)
		if root == nil {
			return buildErr
		}
		if buildErr != nil {
			errs = append(errs, buildErr)
		}

		path, err := writeDialog(cfg, c, root)
		if err != nil {
			return err
		}
		fmt.Printf("%s -> %s (%d diagnostics)\n", c.Name, path, policy.Count())
	}
	return errors.Join(errs...)
}

func writeDialog(cfg *config.Config, c *java.ClassModel, root *target.Target) (string, error) {
	dir := filepath.Join(cfg.Output, c.SimpleName, "_cq_dialog")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, format.FileName(cfg.Format))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}

	enc, err := format.NewEncoder(cfg.Format, f)
	if err != nil {
		f.Close()
		return "", err
	}
	if err := enc.Encode(root); err != nil {
		f.Close()
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}
