package template

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	yaml "gopkg.in/yaml.v2"

	"github.com/go-remap/remap"
)

// LoadYAML parses a YAML template document into a RawTemplate
func LoadYAML(doc []byte) (remap.RawTemplate, error) {
	var parsed map[string]interface{}
	if err := yaml.Unmarshal(doc, &parsed); err != nil {
		return nil, fmt.Errorf("Unable to parse YAML template: %w", err)
	}
	return remap.RawTemplate(parsed), nil
}

// LoadJSON parses a JSON template document into a RawTemplate
func LoadJSON(doc []byte) (remap.RawTemplate, error) {
	if !gjson.ValidBytes(doc) {
		return nil, fmt.Errorf("Unable to parse JSON template: document is not valid JSON")
	}
	parsed := gjson.ParseBytes(doc)
	if !parsed.IsObject() {
		return nil, fmt.Errorf("Unable to parse JSON template: top level must be an object")
	}
	raw, ok := fromJSON(parsed).(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("Unable to parse JSON template: top level must be an object")
	}
	return remap.RawTemplate(raw), nil
}

// LoadFile reads a template document from disk, selecting the parser by
// file extension (.json selects JSON, anything else selects YAML)
func LoadFile(path string) (remap.RawTemplate, error) {
	doc, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return LoadJSON(doc)
	}
	return LoadYAML(doc)
}

func fromJSON(result gjson.Result) interface{} {
	switch {
	case result.IsObject():
		obj := make(map[string]interface{})
		result.ForEach(func(key, value gjson.Result) bool {
			obj[key.String()] = fromJSON(value)
			return true
		})
		return obj
	case result.IsArray():
		var arr []interface{}
		result.ForEach(func(_, value gjson.Result) bool {
			arr = append(arr, fromJSON(value))
			return true
		})
		return arr
	case result.Type == gjson.String:
		return result.String()
	case result.Type == gjson.Null:
		return nil
	default:
		return result.Value()
	}
}
