package listing

import "strings"

// Excluded reports whether files under folder stay out of the record
// stream. The empty folder means no header has been seen yet (or the
// folder collapsed to the root itself), so its files are dropped too.
func Excluded(folder string) bool {
	switch {
	case folder == "":
		return true
	case strings.HasSuffix(folder, "__pycache__"):
		return true
	case strings.HasSuffix(folder, `\.git`):
		return true
	case strings.Contains(folder, `\.git\`):
		return true
	case strings.Contains(folder, `\$RECYCLE.BIN\`):
		return true
	}
	return false
}
