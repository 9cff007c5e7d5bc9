package utils

import "os"

// DirectoryExists reports whether path names an existing directory.
func DirectoryExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
