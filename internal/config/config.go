package config

import (
	"os"
	"strconv"
)

// Development reports whether the game runs in development mode.
// Development mode enables debug logging and the cheat view.
func Development() bool {
	development, ok := os.LookupEnv("PROXX_DEV")
	if !ok {
		return false
	}
	return development != "0"
}

func intEnv(key string, fallback int) int {
	s, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}

// BoardSize returns the default board side length, overridable via
// PROXX_SIZE.
func BoardSize() int {
	return intEnv("PROXX_SIZE", 8)
}

// HoleCount returns the default number of holes, overridable via
// PROXX_HOLES.
func HoleCount() int {
	return intEnv("PROXX_HOLES", 5)
}
