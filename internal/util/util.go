// Package util provides small helpers shared across the engine packages
// that are not worth pulling in a dependency for.
package util

import (
	"os"
	"path/filepath"
	"time"
)

// Min returns the smaller of the given integers.
func Min(x, y int) int {
	if x < y {
		return x
	}
	return y
}

// Max returns the bigger of the given integers.
func Max(x, y int) int {
	if x > y {
		return x
	}
	return y
}

// Nps calculates nodes per second from a node count and a duration. Adds
// one nanosecond to the duration to avoid division by zero for very fast
// searches.
func Nps(nodes uint64, duration time.Duration) uint64 {
	return uint64(int64(nodes) * time.Second.Nanoseconds() / (duration.Nanoseconds() + 1))
}

// ResolveFile resolves path relative to the executable's directory when it
// is not found relative to the current working directory. Used to locate
// config.toml regardless of where the binary is invoked from.
func ResolveFile(path string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return path, err
	}
	candidate := filepath.Join(filepath.Dir(exe), path)
	if _, err := os.Stat(candidate); err == nil {
		return candidate, nil
	}
	return path, os.ErrNotExist
}
