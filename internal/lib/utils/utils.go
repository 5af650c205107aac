// Package utils contains small helper functions used across the project.
//
// These are generic helpers that don't belong to a specific domain.
package utils

import (
	"encoding/json"
	"fmt"
)

// First returns a pointer to the first element of a slice, or nil when
// the slice is empty. Callers that key dependent lookups off the first
// element use the nil to skip them.
func First[T any](s []T) *T {
	if len(s) == 0 {
		return nil
	}
	return &s[0]
}

// PrintJSON pretty-prints any Go value as indented JSON to stdout.
// Useful for debugging structs and responses.
func PrintJSON(v interface{}) {
	out, err := json.MarshalIndent(v, "", "	")
	if err != nil {
		fmt.Println("Error marshalling the JSON:", err)
		return
	}
	fmt.Println("JSON:", string(out))
}
