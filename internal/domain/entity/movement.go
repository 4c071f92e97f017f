package entity

import "time"

// Movement is the audit record of one successful move, written in the same
// transaction as the debit and credit it describes.
type Movement struct {
	ID             string // uuid
	ItemName       string
	FromLocationID int64
	ToLocationID   int64
	FromLocation   string // joined names for responses
	ToLocation     string
	Quantity       int64
	CreatedAt      time.Time
}
