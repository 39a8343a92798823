package postgres

import "time"

func nullableTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}
