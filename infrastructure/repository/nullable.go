package repository

import (
	"database/sql"
	"time"
)

// nullableDate converte yyyy-mm-dd vazio em NULL
func nullableDate(date string) interface{} {
	if date == "" {
		return nil
	}
	return date
}

func nullableInt(value *int) interface{} {
	if value == nil {
		return nil
	}
	return *value
}

func dateString(value sql.NullTime) string {
	if !value.Valid {
		return ""
	}
	return value.Time.Format(time.DateOnly)
}

func intPointer(value sql.NullInt64) *int {
	if !value.Valid {
		return nil
	}
	v := int(value.Int64)
	return &v
}
