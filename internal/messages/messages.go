// Package messages holds every user-facing string of the terminal UI.
package messages

import "fmt"

// T returns the string for key.
// If the key is not found, the key itself is returned.
func T(key string) string {
	if v, ok := en[key]; ok {
		return v
	}
	return key
}

// Tf returns a formatted string.
func Tf(key string, args ...any) string {
	return fmt.Sprintf(T(key), args...)
}
