// Package obfuscate reversibly encodes journal text so it is not
// readable in a casual look at the database. It is base64, not
// encryption, and must never be treated as confidentiality.
package obfuscate

import (
	"encoding/base64"
	"fmt"
)

// Encode obfuscates s.
func Encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// Decode reverses Encode.
func Decode(s string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("decode obfuscated text: %w", err)
	}
	return string(raw), nil
}
