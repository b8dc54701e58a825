package types

import "strings"

// NormalizeHex returns the provided hex string in its canonical form: lowercase and prefixed with a single "0x".
// Normalizing an already normalized value returns it unchanged.
func NormalizeHex(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	return "0x" + strings.ToLower(s)
}
