// Package menu defines the catalog snapshot and the fuzzy matcher that
// resolves spoken item names against it.
package menu

// Item is one catalog entry of the restaurant menu.
type Item struct {
	ID       string
	Name     string
	Price    float64
	Category string
	// Aliases are alternative spoken names, e.g. "coke" for "Coca-Cola".
	Aliases []string
}
