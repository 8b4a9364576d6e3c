package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/java/codebase"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var s settings
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch [class...]",
		Short: "Re-render dialogs whenever descriptor files change",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := s.load(cmd, args)
			if err != nil {
				return err
			}
			cb := codebase.New(cfg.Sources...)

			watcher := codebase.NewFileWatcher(cb, interval)
			watcher.OnChange = func(changed []string) {
				fmt.Printf("%d file(s) changed\n", len(changed))
				for path, err := range cb.Errors() {
					fmt.Printf("%s: %v\n", path, err)
				}
				if err := renderAll(cb.Index(), cfg); err != nil {
					fmt.Printf("render: %v\n", err)
				}
			}
			watcher.Start()
			defer watcher.Stop()

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt)
			<-sig
			return nil
		},
	}
	s.register(cmd)
	cmd.Flags().DurationVarP(&interval, "interval", "i", time.Second, "polling interval")

	return cmd
}
