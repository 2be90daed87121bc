package store

import "hms-console/internal/app/models"

// Appended returns a new collection with row added at the end.
func Appended[T any](rows []T, row T) []T {
	next := make([]T, 0, len(rows)+1)
	next = append(next, rows...)
	return append(next, row)
}

// ReplacedByKey returns a new collection where every row sharing row's key
// is replaced by row. Other rows are copied unchanged.
func ReplacedByKey[T models.Keyed](rows []T, row T) []T {
	next := make([]T, len(rows))
	for i, current := range rows {
		if current.Key() == row.Key() {
			next[i] = row
			continue
		}
		next[i] = current
	}
	return next
}

// RemovedByKey returns a new collection without the rows identified by key.
func RemovedByKey[T models.Keyed](rows []T, key string) []T {
	next := make([]T, 0, len(rows))
	for _, current := range rows {
		if current.Key() != key {
			next = append(next, current)
		}
	}
	return next
}

func FindByKey[T models.Keyed](rows []T, key string) (T, bool) {
	for _, current := range rows {
		if current.Key() == key {
			return current, true
		}
	}
	var zero T
	return zero, false
}
