//go:build linux
// +build linux

// Package storage provides the application data directory path per platform.
package storage

import (
	"os"
	"path/filepath"
)

// GetDataStoragePath returns the data storage path in the user's HOME
// directory, specifically for the proton-save-finder application on linux
// systems. The catalog cache database lives here.
func GetDataStoragePath() string {
	homeDir := os.Getenv("HOME")
	return filepath.Join(homeDir, ".proton-save-finder", "data")
}
