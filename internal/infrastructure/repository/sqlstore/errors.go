package sqlstore

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

const pqForeignKeyViolation = pq.ErrorCode("23503")

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// isForeignKeyViolation recognises referential-integrity failures by driver error code only.
func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}

	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		return isSQLiteForeignKey(sqliteErr.Code(), sqliteErr.Error())
	}

	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation
}

// isSQLiteForeignKey accepts the extended code, or the primary constraint code
// with SQLite's foreign key message when extended codes are off for the connection.
func isSQLiteForeignKey(code int, message string) bool {
	if code == sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY {
		return true
	}
	return code&0xff == sqlite3lib.SQLITE_CONSTRAINT && strings.Contains(message, "FOREIGN KEY constraint failed")
}
