package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON string

var ErrInvalid = errors.New("config validation failed")

// validate converts the YAML document to JSON and checks it against schema.json.
// Every schema violation is reported in the returned error.
func validate(data []byte) error {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("unmarshal yaml: %w", err)
	}
	if doc == nil {
		return fmt.Errorf("%w: empty document", ErrInvalid)
	}

	jb, err := json.Marshal(jsonValue(doc))
	if err != nil {
		return fmt.Errorf("marshal to json: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemaJSON),
		gojsonschema.NewBytesLoader(jb),
	)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if !result.Valid() {
		var sb strings.Builder
		for _, e := range result.Errors() {
			sb.WriteString("\n- ")
			sb.WriteString(e.String())
		}
		return fmt.Errorf("%w:%s", ErrInvalid, sb.String())
	}

	return nil
}

// jsonValue makes decoded YAML acceptable to encoding/json: mapping keys
// that yaml.v3 left as interface{} are stringified.
func jsonValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		for k, vv := range val {
			val[k] = jsonValue(vv)
		}
		return val
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, vv := range val {
			m[fmt.Sprint(k)] = jsonValue(vv)
		}
		return m
	case []interface{}:
		for i, vv := range val {
			val[i] = jsonValue(vv)
		}
		return val
	default:
		return v
	}
}
