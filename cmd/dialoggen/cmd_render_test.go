package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/api"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/config"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/java"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/target"
)

func TestWriteDialog(t *testing.T) {
	card := &java.ClassModel{Name: "com.example.Card", SimpleName: "Card"}
	root := target.New(api.NodeRoot)
	root.Attribute(api.PropTitle, "Card")

	t.Run("written and closed", func(t *testing.T) {
		for _, tt := range []struct {
			format string
			file   string
			want   string
		}{
			{"xml", ".content.xml", `jcr:title="Card"`},
			{"json", "dialog.json", `"jcr:title"`},
		} {
			cfg := &config.Config{Output: t.TempDir(), Format: tt.format}
			path, err := writeDialog(cfg, card, root)
			if err != nil {
				t.Fatalf("writeDialog(%s) error: %v", tt.format, err)
			}
			if want := filepath.Join(cfg.Output, "Card", "_cq_dialog", tt.file); path != want {
				t.Errorf("writeDialog(%s) = %q, want %q", tt.format, path, want)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile() error: %v", err)
			}
			if !strings.Contains(string(data), tt.want) {
				t.Errorf("%s = %q, want it to contain %s", tt.file, data, tt.want)
			}
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		cfg := &config.Config{Output: t.TempDir(), Format: "yaml"}
		if _, err := writeDialog(cfg, card, root); err == nil {
			t.Error("writeDialog() error = nil, want unknown format")
		}
	})

	t.Run("output is a file", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "out")
		if err := os.WriteFile(blocker, nil, 0o644); err != nil {
			t.Fatal(err)
		}
		cfg := &config.Config{Output: blocker, Format: "xml"}
		if _, err := writeDialog(cfg, card, root); err == nil {
			t.Error("writeDialog() error = nil, want output dir error")
		}
	})
}
