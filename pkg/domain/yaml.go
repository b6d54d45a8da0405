package domain

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/igormicadei/sessionbind/pkg/schema"
)

// schemaDoc mirrors the YAML layout of a schema declaration:
//
//	class: profile
//	fields:
//	  - name: name
//	    type: string
//	    default: anonymous
//	  - name: counter
//	    type: int
//	    default: 0
type schemaDoc struct {
	Class  string     `yaml:"class"`
	Fields []fieldDoc `yaml:"fields"`
}

type fieldDoc struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Default any    `yaml:"default"`
}

// ParseSchema parses a YAML schema declaration. Type strings follow the
// schema package syntax ("string", "int", "float", "bool", "[string]", ...);
// an omitted type means the field accepts anything.
func ParseSchema(data []byte) (*Schema, error) {
	var doc schemaDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse schema document: %w", err)
	}

	fields := make([]Field, 0, len(doc.Fields))
	for _, fd := range doc.Fields {
		f := Field{Name: fd.Name, Default: fd.Default}
		if fd.Type != "" {
			t, err := schema.ParseType(fd.Type)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", fd.Name, err)
			}
			f.Type = t
		}
		fields = append(fields, f)
	}
	return NewSchema(doc.Class, fields...)
}

// ParseSchemaFile reads and parses a YAML schema declaration from disk.
func ParseSchemaFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	return ParseSchema(data)
}
