package format

import (
	"encoding/json"
	"io"

	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/target"
)

type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(t *target.Target) error {
	text, err := e.MarshalText(t)
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *JSONEncoder) MarshalText(t *target.Target) ([]byte, error) {
	return json.MarshalIndent(nodeToJSON(t), "", "  ")
}

type jsonNode struct {
	Name       string      `json:"name"`
	Attributes []jsonAttr  `json:"attributes,omitempty"`
	Children   []*jsonNode `json:"children,omitempty"`
}

type jsonAttr struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func nodeToJSON(t *target.Target) *jsonNode {
	jn := &jsonNode{Name: t.Name()}
	for _, a := range t.Attributes() {
		jn.Attributes = append(jn.Attributes, jsonAttr{Key: a.Key, Value: a.Value})
	}
	if len(t.Children()) > 0 {
		jn.Children = make([]*jsonNode, len(t.Children()))
		for i, child := range t.Children() {
			jn.Children[i] = nodeToJSON(child)
		}
	}
	return jn
}
