package util

import (
	"os"
	"strconv"
)

// GetenvDefault returns the named environment variable, or fallback when
// it is unset or empty.
func GetenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// AtoiDefault parses s as an int, returning fallback when s is empty or
// not a number.
func AtoiDefault(s string, fallback int) int {
	if s == "" {
		return fallback
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}

	return n
}
