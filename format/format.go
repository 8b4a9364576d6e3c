package format

import (
	"fmt"
	"io"

	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/target"
)

type Encoder interface {
	Encode(t *target.Target) error
}

// NewEncoder returns the encoder registered for the format name.
func NewEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "", "xml":
		return NewXMLEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s (expected xml or json)", name)
	}
}

// FileName returns the conventional output file name for a format.
func FileName(name string) string {
	if name == "json" {
		return "dialog.json"
	}
	return ".content.xml"
}
