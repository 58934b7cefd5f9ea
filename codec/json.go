// file: nset/codec/json.go
package codec

import "encoding/json"

// Unmarshal decodes a nested JSON document into a target value.
func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// MarshalIndent encodes a value as indented JSON, the form Unmarshal
// reads back.
func MarshalIndent(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
