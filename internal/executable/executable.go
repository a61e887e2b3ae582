// Package executable answers whether a path can be run as a packaged command.
package executable

import "os"

// anyExecute covers the user, group and other execute bits.
const anyExecute os.FileMode = 0o111

// IsValid reports whether path names a regular file with at least one execute
// bit set. Symlinks are followed. Missing paths, directories and files without
// an execute bit are not valid.
func IsValid(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if !info.Mode().IsRegular() {
		return false
	}
	return info.Mode().Perm()&anyExecute != 0
}

// Filter returns the subset of paths that are valid executables, in input order.
func Filter(paths ...string) []string {
	valid := make([]string, 0, len(paths))
	for _, p := range paths {
		if IsValid(p) {
			valid = append(valid, p)
		}
	}
	return valid
}
