// Package propquery looks up dotted section.key properties in the JSON
// form of a configuration document.
package propquery

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Lookup returns the value of a property like "main.server.hostname" from
// a JSON document shaped {"section": {"key": value}}. The first dot
// separates the section from the key; remaining dots belong to the key
// name itself and are escaped for the gjson path syntax.
func Lookup(json, property string) (string, error) {
	if json == "" {
		return "", fmt.Errorf("empty JSON document")
	}

	gpath, err := toGjsonPath(property)
	if err != nil {
		return "", err
	}

	result := gjson.Get(json, gpath)
	if !result.Exists() {
		return "", fmt.Errorf("property not found: %s", property)
	}
	if result.Type == gjson.Null {
		return "", nil
	}
	return result.String(), nil
}

// Exists reports whether a property is present in the document.
func Exists(json, property string) bool {
	gpath, err := toGjsonPath(property)
	if err != nil {
		return false
	}
	return gjson.Get(json, gpath).Exists()
}

// toGjsonPath converts "main.server.hostname" into the gjson path
// `main.server\.hostname`.
func toGjsonPath(property string) (string, error) {
	section, key, ok := strings.Cut(property, ".")
	if !ok || section == "" || key == "" {
		return "", fmt.Errorf("invalid property %q: expected section.key", property)
	}
	return section + "." + strings.ReplaceAll(key, ".", `\.`), nil
}
