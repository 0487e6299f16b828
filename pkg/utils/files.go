package utils

import (
	"path/filepath"
	"strings"
)

// GetPathInfo resolves relPath to an absolute path and derives the default
// ".cpp" output path that sits next to it (the source's basename with its
// extension swapped), which cmd/akbarc falls back to whenever --out isn't
// given.
func GetPathInfo(relPath string) (fullPath string, defaultOutPath string, err error) {
	fullPath, err = filepath.Abs(relPath)
	if err != nil {
		return "", "", err
	}

	defaultOutPath = strings.TrimSuffix(fullPath, filepath.Ext(fullPath)) + ".cpp"

	return fullPath, defaultOutPath, nil
}
