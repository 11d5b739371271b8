package policydoc

//go:generate go run github.com/dmarkham/enumer -type=PolicyType -transform=lower -json -text

// PolicyType selects which access template a generated policy document is
// built from.
type PolicyType int

const (
	// Readonly grants browse and pull access.
	Readonly PolicyType = iota
	// Developer grants everything except repository deletion.
	Developer
	// Admin grants full access.
	Admin
)
