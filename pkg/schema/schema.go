package schema

import "encoding/json"

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Stringify returns an indented JSON representation of the value
func Stringify[T any](v T) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}
