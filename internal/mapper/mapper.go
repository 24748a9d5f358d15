// Package mapper copies fields between persistence records and transfer
// objects. A nil input always maps to nil.
package mapper

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

func toDate(t time.Time) pgtype.Date {
	if t.IsZero() {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: t, Valid: true}
}

func fromDate(d pgtype.Date) time.Time {
	if !d.Valid {
		return time.Time{}
	}
	return d.Time
}
