package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// JSONSchema is the subset of JSON Schema draft 2020-12 that manifest
// types need.
type JSONSchema struct {
	Schema      string                 `json:"$schema,omitempty"`
	ID          string                 `json:"$id,omitempty"`
	Title       string                 `json:"title,omitempty"`
	Description string                 `json:"description,omitempty"`
	Type        string                 `json:"type"`
	Required    []string               `json:"required,omitempty"`
	Properties  map[string]*JSONSchema `json:"properties,omitempty"`
	Items       *JSONSchema            `json:"items,omitempty"`
	Enum        []any                  `json:"enum,omitempty"`
	Default     any                    `json:"default,omitempty"`
	MinItems    *int                   `json:"minItems,omitempty"`
}

const schemaDialect = "https://json-schema.org/draft/2020-12/schema"

// Generator builds JSON schemas from Go structs. Field names come from
// json tags, constraints from schema tags (required, enum=a|b,
// default=v, minItems=n) and descriptions from description tags.
type Generator struct {
	idBase string
}

func NewGenerator() *Generator {
	return &Generator{idBase: "https://schemas.homily-archive.org"}
}

// Generate produces the schema for v's type. The root schema carries
// the dialect, title and id; nested schemas stay bare.
func (g *Generator) Generate(v any) (*JSONSchema, error) {
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("schema root must be a struct, got %s", t.Kind())
	}

	s, err := g.typeSchema(t)
	if err != nil {
		return nil, err
	}
	s.Schema = schemaDialect
	s.Title = t.Name()
	s.ID = fmt.Sprintf("%s/%s", g.idBase, strings.ToLower(t.Name()))
	return s, nil
}

// GenerateJSON renders the schema for v as indented JSON.
func (g *Generator) GenerateJSON(v any) (string, error) {
	s, err := g.Generate(v)
	if err != nil {
		return "", err
	}

	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling schema: %w", err)
	}
	return string(b), nil
}

func (g *Generator) typeSchema(t reflect.Type) (*JSONSchema, error) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct:
		return g.structSchema(t)
	case reflect.Slice:
		items, err := g.typeSchema(t.Elem())
		if err != nil {
			return nil, fmt.Errorf("array items: %w", err)
		}
		return &JSONSchema{Type: "array", Items: items}, nil
	case reflect.String:
		return &JSONSchema{Type: "string"}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &JSONSchema{Type: "integer"}, nil
	case reflect.Float32, reflect.Float64:
		return &JSONSchema{Type: "number"}, nil
	case reflect.Bool:
		return &JSONSchema{Type: "boolean"}, nil
	default:
		return nil, fmt.Errorf("unsupported type: %s", t.Kind())
	}
}

func (g *Generator) structSchema(t reflect.Type) (*JSONSchema, error) {
	s := &JSONSchema{
		Type:       "object",
		Properties: make(map[string]*JSONSchema),
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name := fieldName(field)
		if name == "" {
			continue
		}

		fs, err := g.typeSchema(field.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}

		if desc := field.Tag.Get("description"); desc != "" {
			fs.Description = desc
		}
		applyConstraints(field.Tag.Get("schema"), fs)

		s.Properties[name] = fs
		if strings.Contains(field.Tag.Get("schema"), "required") {
			s.Required = append(s.Required, name)
		}
	}

	return s, nil
}

func applyConstraints(tag string, s *JSONSchema) {
	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)

		switch {
		case strings.HasPrefix(part, "enum="):
			for _, e := range strings.Split(strings.TrimPrefix(part, "enum="), "|") {
				s.Enum = append(s.Enum, e)
			}
		case strings.HasPrefix(part, "default="):
			s.Default = strings.TrimPrefix(part, "default=")
		case strings.HasPrefix(part, "minItems="):
			if v, err := strconv.Atoi(strings.TrimPrefix(part, "minItems=")); err == nil {
				s.MinItems = &v
			}
		}
	}
}

func fieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return ""
	}

	name, _, _ := strings.Cut(tag, ",")
	if name != "" {
		return name
	}
	return strings.ToLower(field.Name[:1]) + field.Name[1:]
}
