package entity

// Base holds the surrogate key shared by every table except the link tables.
type Base struct {
	ID int64 `db:"id"`
}
