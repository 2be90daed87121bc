package models

// Keyed rows expose the identity used as list key and as the
// correlation key for update and delete.
type Keyed interface {
	Key() string
}
