package entity

// Status is the two-state lifecycle of an account. There is no transition
// back from StatusDeleted; soft deletion is monotonic.
type Status string

const (
	StatusActive  Status = "active"
	StatusDeleted Status = "deleted"
)
