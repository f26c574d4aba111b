// Package manifest edits package.json documents in place.
//
// Edits go through sjson so keys keep their original order, and the
// result is re-indented with tabs.
package manifest

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/raphi011/create-whop/internal/hookerr"
)

// FileName is the manifest path inside a template.
const FileName = "package.json"

var prettyOptions = &pretty.Options{
	Width:    0,
	Prefix:   "",
	Indent:   "\t",
	SortKeys: false,
}

// SetName returns data with its top-level name field set to name.
func SetName(data []byte, name string) ([]byte, error) {
	return Set(data, "name", name)
}

// Set assigns value at the gjson path key and reformats the document.
func Set(data []byte, key string, value any) ([]byte, error) {
	if err := checkObject(data); err != nil {
		return nil, err
	}
	out, err := sjson.SetBytes(data, key, value)
	if err != nil {
		return nil, hookerr.Wrap(hookerr.Manifest, "set "+key, err)
	}
	return pretty.PrettyOptions(out, prettyOptions), nil
}

// Name returns the top-level name field, or "" if absent.
func Name(data []byte) string {
	return gjson.GetBytes(data, "name").String()
}

func checkObject(data []byte) error {
	if !gjson.ValidBytes(data) {
		return hookerr.New(hookerr.Manifest, FileName, "invalid JSON")
	}
	if !gjson.ParseBytes(data).IsObject() {
		return hookerr.New(hookerr.Manifest, FileName, "top-level value must be an object")
	}
	return nil
}
