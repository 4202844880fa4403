package domain

// User is a registered person record. Password is kept as submitted.
type User struct {
	ID       int64
	Name     string
	Age      int64
	Password string
}
