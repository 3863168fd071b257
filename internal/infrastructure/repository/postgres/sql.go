package postgres

import (
	"database/sql"
	"errors"
)

// isNotFound translates the driver's empty-result error into the
// repositories' (value, false, nil) miss contract.
func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
