// Package utils contains general helper functions used across exampledoc.
package utils

import (
	"path/filepath"
	"strings"
)

const pathSegmentSeparator = "/"

// JoinSlashPath joins path segments with forward slashes, skipping empty and "." segments.
func JoinSlashPath(segments ...string) string {
	kept := make([]string, 0, len(segments))
	for _, segment := range segments {
		normalized := strings.Trim(filepath.ToSlash(segment), pathSegmentSeparator)
		if normalized == "" || normalized == "." {
			continue
		}
		kept = append(kept, normalized)
	}
	return strings.Join(kept, pathSegmentSeparator)
}
