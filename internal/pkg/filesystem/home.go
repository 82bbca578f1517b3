package filesystem

import "os"

// UserHomeDir returns the current user's home directory, falling back to
// "." when it cannot be determined. Config and history paths hang off it.
func UserHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}
