// Package path normalizes paths for emission into generated files.
package path

import "path/filepath"

// Slash converts a path to its forward-slash form. Generated declaration
// files must use forward slashes on every platform because CMake treats
// backslashes as escapes.
func Slash(p string) string {
	return filepath.ToSlash(p)
}
