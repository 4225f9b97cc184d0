package ledger

// Category is the fixed set of account kinds.
type Category string

const (
	CategorySaving  Category = "SAVING"
	CategoryCurrent Category = "CURRENT"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategorySaving, CategoryCurrent:
		return true
	}
	return false
}
