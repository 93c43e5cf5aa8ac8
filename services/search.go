package services

import (
	"strings"

	"gorm.io/gorm"
)

// foldsInStore reports whether LOWER() in the store folds non-ASCII letters.
// SQLite's built-in LOWER() only folds ASCII, so text matching there is done
// on the fetched rows instead.
func foldsInStore(db *gorm.DB) bool {
	return db.Dialector.Name() != "sqlite"
}

// whereText adds a case-insensitive substring match of query against any of columns.
func whereText(q *gorm.DB, query string, columns ...string) *gorm.DB {
	pattern := likePattern(query)
	conds := make([]string, len(columns))
	args := make([]interface{}, len(columns))
	for i, col := range columns {
		conds[i] = "LOWER(" + col + ") LIKE ? ESCAPE '!'"
		args[i] = pattern
	}
	return q.Where(strings.Join(conds, " OR "), args...)
}

// matchText keeps the rows where any of fields contains query, ignoring case.
func matchText[T any](rows []T, query string, fields func(T) []string) []T {
	needle := strings.ToLower(query)
	matched := rows[:0]
	for _, row := range rows {
		for _, v := range fields(row) {
			if strings.Contains(strings.ToLower(v), needle) {
				matched = append(matched, row)
				break
			}
		}
	}
	return matched
}

// likePattern lowercases s and escapes LIKE wildcards with '!'.
func likePattern(s string) string {
	r := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")
	return "%" + r.Replace(strings.ToLower(s)) + "%"
}
