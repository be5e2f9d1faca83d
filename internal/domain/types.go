package domain

import (
	"regexp"
	"strings"
)

// Action represents a vote action submitted by a viewer
type Action string

const (
	// ActionLike registers a positive vote for an item
	ActionLike Action = "like"
	// ActionUnlike withdraws a previously registered vote
	ActionUnlike Action = "unlike"
)

// Valid reports whether the action is one of the supported vote actions
func (a Action) Valid() bool {
	return a == ActionLike || a == ActionUnlike
}

// Value maps the action to its signed ledger value (+1 for like, -1 for unlike)
func (a Action) Value() int {
	if a == ActionLike {
		return 1
	}
	return -1
}

// addressPattern matches a 0x-prefixed 40-character address
var addressPattern = regexp.MustCompile(`^0x[0-9a-zA-Z]{40}$`)

// ValidAddress reports whether s has the shape of a wallet or contract address
func ValidAddress(s string) bool {
	return addressPattern.MatchString(s)
}

// NormalizeAddress folds an address to its canonical lowercase form. Every
// address crossing the API boundary is normalized before storage, aggregation,
// and cache keying so case-variant spellings resolve to the same entity.
func NormalizeAddress(s string) string {
	return strings.ToLower(s)
}

// Order represents a sort direction for listing queries
type Order string

const (
	// OrderAsc sorts ascending
	OrderAsc Order = "asc"
	// OrderDesc sorts descending
	OrderDesc Order = "desc"
)

// Valid reports whether the order is a supported sort direction
func (o Order) Valid() bool {
	return o == OrderAsc || o == OrderDesc
}
