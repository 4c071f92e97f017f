package entity

import "time"

// Item is the stock of a named inventory unit at one location. One row exists
// per (name, location) pair; quantity is never negative.
type Item struct {
	ID           int64
	Name         string
	LocationID   int64
	LocationName string // joined for responses; not a column of items
	Quantity     int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
