package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// schemaDoc is the part of the generated schema the verification relies on
type schemaDoc struct {
	Ref  string                `json:"$ref"`
	Defs map[string]schemaNode `json:"$defs"`
}

type schemaNode struct {
	Ref        string                `json:"$ref"`
	Type       string                `json:"type"`
	Properties map[string]schemaNode `json:"properties"`
	Items      *schemaNode           `json:"items"`
	Required   []string              `json:"required"`
}

// VerifyAgainstEmbeddedSchema checks the config has no fields unknown to the embedded schema
// and all fields required by it are set
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var doc schemaDoc
	if err := json.Unmarshal([]byte(embeddedSchema), &doc); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	root, ok := doc.resolve(schemaNode{Ref: doc.Ref})
	if !ok {
		return errors.New("schema has no root definition")
	}
	if err := doc.check("", root, configMap); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// check walks the value against the schema node
func (d schemaDoc) check(path string, node schemaNode, value any) error {
	node, ok := d.resolve(node)
	if !ok {
		return fmt.Errorf("%s: unresolved schema reference %s", path, node.Ref)
	}

	switch v := value.(type) {
	case map[string]any:
		if node.Properties == nil {
			return nil
		}
		for _, req := range node.Required {
			if isEmpty(v[req]) {
				return fmt.Errorf("%s is required", join(path, req))
			}
		}
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sub, ok := node.Properties[k]
			if !ok {
				return fmt.Errorf("%s is not in schema", join(path, k))
			}
			if err := d.check(join(path, k), sub, v[k]); err != nil {
				return err
			}
		}
	case []any:
		if node.Items == nil {
			return nil
		}
		for i, item := range v {
			if err := d.check(fmt.Sprintf("%s[%d]", path, i), *node.Items, item); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d schemaDoc) resolve(node schemaNode) (schemaNode, bool) {
	if node.Ref == "" {
		return node, true
	}
	def, ok := d.Defs[strings.TrimPrefix(node.Ref, "#/$defs/")]
	return def, ok
}

func isEmpty(v any) bool {
	switch vv := v.(type) {
	case nil:
		return true
	case string:
		return vv == ""
	}
	return false
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// GenerateSchema generates a JSON schema for the Config struct, only fields tagged as required are required
func GenerateSchema() *jsonschema.Schema {
	r := jsonschema.Reflector{RequiredFromJSONSchemaTags: true}
	return r.Reflect(&Config{})
}
