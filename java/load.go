package java

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// IsDescriptorFile reports whether path has a class descriptor extension.
func IsDescriptorFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

func ClassModelsFromFile(path string) ([]*ClassModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var models []*ClassModel
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		models, err = ClassModelsFromJSON(bytes.NewReader(data))
	case ".yaml", ".yml":
		models, err = ClassModelsFromYAML(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported descriptor extension: %s (expected .json, .yaml or .yml)", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for _, m := range models {
		if m.SourceFile == "" {
			m.SourceFile = path
		}
	}
	return models, nil
}

// ClassModelsFromJSON reads either a single class object or an array of
// class objects.
func ClassModelsFromJSON(r io.Reader) ([]*ClassModel, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var models []*ClassModel
		if err := json.Unmarshal(trimmed, &models); err != nil {
			return nil, err
		}
		return models, nil
	}
	model := &ClassModel{}
	if err := json.Unmarshal(trimmed, model); err != nil {
		return nil, err
	}
	return []*ClassModel{model}, nil
}

// ClassModelsFromYAML reads a stream of YAML documents; each document is
// a class or a list of classes.
func ClassModelsFromYAML(r io.Reader) ([]*ClassModel, error) {
	dec := yaml.NewDecoder(r)
	var models []*ClassModel
	for {
		var node yaml.Node
		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		doc := &node
		if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
			doc = doc.Content[0]
		}
		switch doc.Kind {
		case yaml.SequenceNode:
			var list []*ClassModel
			if err := doc.Decode(&list); err != nil {
				return nil, err
			}
			models = append(models, list...)
		case yaml.MappingNode:
			model := &ClassModel{}
			if err := doc.Decode(model); err != nil {
				return nil, err
			}
			models = append(models, model)
		}
	}
	return models, nil
}
