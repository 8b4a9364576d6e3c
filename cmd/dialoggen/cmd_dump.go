package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/java"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newDumpCmd() *cobra.Command {
	var dumpFormat string

	cmd := &cobra.Command{
		Use:   "dump <descriptor>",
		Short: "Dump the class models loaded from a descriptor file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			models, err := java.ClassModelsFromFile(args[0])
			if err != nil {
				return err
			}

			switch dumpFormat {
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(models); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
			case "yaml":
				enc := yaml.NewEncoder(os.Stdout)
				enc.SetIndent(2)
				if err := enc.Encode(models); err != nil {
					return fmt.Errorf("encode yaml: %w", err)
				}
				return enc.Close()
			case "line":
				idx := java.NewIndex(models...)
				for _, c := range idx.Classes() {
					fmt.Printf("%s extends %s\n", c.Name, c.SuperClass)
					for _, a := range c.Annotations {
						fmt.Printf("  @%s\n", a.SimpleType())
					}
					for _, f := range c.Fields {
						fmt.Printf("  field %s %s\n", f.Type, f.Name)
					}
					for _, m := range c.Methods {
						fmt.Printf("  method %s %s()\n", m.ReturnType, m.Name)
					}
				}
			default:
				return fmt.Errorf("unknown format: %s (expected json, yaml, or line)", dumpFormat)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dumpFormat, "format", "f", "line", "output format (json, yaml, line)")

	return cmd
}
