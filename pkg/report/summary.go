package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/dmahugh/backup-verifier/pkg/compare"
)

// Summary renders the one-line outcome for one backup. Zero-count
// clauses are left out entirely.
func Summary(backup, master string, res compare.Result) string {
	if res.Clean() {
		return fmt.Sprintf("%s -- clean backup, all files match %s", backup, master)
	}

	var clauses []string
	if n := len(res.Missing); n > 0 {
		clauses = append(clauses, fmt.Sprintf("%d missing %s", n, plural(n)))
	}
	if n := len(res.Modified); n > 0 {
		clauses = append(clauses, fmt.Sprintf("%d different timestamp/size", n))
	}
	if n := len(res.Extra); n > 0 {
		clauses = append(clauses, fmt.Sprintf("%d extra %s", n, plural(n)))
	}
	return fmt.Sprintf("%s -- %s", backup, strings.Join(clauses, ", "))
}

func plural(n int) string {
	if n == 1 {
		return "file"
	}
	return "files"
}

// MasterSummary renders the master line shown ahead of the backup
// comparisons.
func MasterSummary(master string, files int) string {
	return fmt.Sprintf("%s -- MASTER COPY (%s files)", master, humanize.Comma(int64(files)))
}
