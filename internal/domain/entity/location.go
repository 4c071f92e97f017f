package entity

// Location is a named storage site holding zero or more items. Locations are
// seeded at schema-bootstrap time and immutable afterwards.
type Location struct {
	ID   int64
	Name string
}
