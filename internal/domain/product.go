package domain

// Product is a catalog record. Obs is an optional free-form note.
type Product struct {
	ID    int64
	Name  string
	Price int64
	Obs   *string
}
