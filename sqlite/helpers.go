package sqlite

import (
	"fmt"
	"strings"
	"time"
)

// timeFormat is the layout of timestamps stored in TEXT columns.
const timeFormat = time.RFC3339

// parseTime parses a stored timestamp, naming the column on failure.
func parseTime(value, column string) (time.Time, error) {
	t, err := time.Parse(timeFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", column, err)
	}
	return t, nil
}

// paginate appends LIMIT and OFFSET clauses to query. A zero limit means no
// limit. SQLite rejects OFFSET without LIMIT, so an offset alone is paired
// with LIMIT -1.
func paginate(query *strings.Builder, args *[]any, limit, offset int) {
	if limit <= 0 && offset <= 0 {
		return
	}
	if limit <= 0 {
		limit = -1
	}
	query.WriteString(" LIMIT ?")
	*args = append(*args, limit)
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
