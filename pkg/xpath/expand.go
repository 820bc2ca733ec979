package xpath

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Expand resolves a leading "~" to the home directory of the current user
// and substitutes $VAR/${VAR} references from the environment.
func Expand(rawPath string) (string, error) {
	expanded := os.ExpandEnv(rawPath)
	switch {
	case expanded == "~":
		return homeDir()
	case strings.HasPrefix(expanded, "~/"):
		home, err := homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, expanded[2:]), nil
	}
	return expanded, nil
}

func homeDir() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("unable to get user home dir: %w", err)
	}
	return dir, nil
}
