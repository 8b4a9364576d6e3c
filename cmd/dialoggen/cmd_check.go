package main

import (
	"fmt"

	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/diag"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/dialog"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var s settings

	cmd := &cobra.Command{
		Use:   "check [class...]",
		Short: "Build dialogs without writing them and report container diagnostics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := s.load(cmd, args)
			if err != nil {
				return err
			}
			cb, err := openCodebase(cfg)
			if err != nil {
				return err
			}
			classes, err := selectComponents(cb.Index(), cfg)
			if err != nil {
				return err
			}

			total := 0
			for _, c := range classes {
				rec := &diag.Recorder{}
				if _, err := dialog.Build(cb.Index(), c, rec); err != nil {
					return err
				}
				for _, e := range rec.Errors() {
					fmt.Printf("%s: %v\n", c.Name, e)
				}
				total += len(rec.Errors())
			}

			fmt.Printf("%d classes checked, %d diagnostics\n", len(classes), total)
			if total > 0 {
				return fmt.Errorf("%d diagnostics", total)
			}
			return nil
		},
	}
	s.register(cmd)

	return cmd
}
