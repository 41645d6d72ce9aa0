package database

import "strings"

// IsForeignKeyViolation checks if the error is a SQLite foreign key
// constraint failure. Works with both mattn/go-sqlite3 and modernc.org/sqlite
// drivers, which render the error differently.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "FOREIGN KEY constraint failed") ||
		strings.Contains(errStr, "SQLITE_CONSTRAINT_FOREIGNKEY") ||
		strings.Contains(errStr, "constraint failed: FOREIGN KEY")
}
