package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/artfolio/artfolio-api/internal/domain"
)

// ItemRef identifies one curated item by contract address and token identifier
type ItemRef struct {
	Contract string `json:"contract"`
	Token    string `json:"token"`
}

// FeaturedRegistry defines the interface for the curated featured-content list
//
//go:generate mockgen -source=featured.go -destination=../mocks/featured_registry.go -package=mocks -mock_names=FeaturedRegistry=MockFeaturedRegistry
type FeaturedRegistry interface {
	// Items returns the curated item list in display order
	Items() []ItemRef

	// Contains checks whether an item is on the featured list
	Contains(contractAddress, tokenIdentifier string) bool
}

// featuredRegistry is the internal implementation of FeaturedRegistry
type featuredRegistry struct {
	items []ItemRef
	// Fast lookup map: "contract:token" -> true
	index map[string]bool
}

// LoadFeatured loads the featured registry from a JSON file holding an array
// of item references. Entries with malformed contract addresses are skipped.
func LoadFeatured(filePath string) (FeaturedRegistry, error) {
	data, err := os.ReadFile(filePath) //nolint:gosec,G304 // This should be a trusted file
	if err != nil {
		return nil, fmt.Errorf("failed to read featured file: %w", err)
	}

	var refs []ItemRef
	if err := json.Unmarshal(data, &refs); err != nil {
		return nil, fmt.Errorf("failed to parse featured JSON: %w", err)
	}

	reg := &featuredRegistry{
		index: make(map[string]bool),
	}

	for _, ref := range refs {
		if !domain.ValidAddress(ref.Contract) || ref.Token == "" {
			continue
		}
		normalized := ItemRef{
			Contract: strings.ToLower(ref.Contract),
			Token:    ref.Token,
		}
		reg.items = append(reg.items, normalized)
		reg.index[normalized.Contract+":"+normalized.Token] = true
	}

	return reg, nil
}

// NewFeatured creates a featured registry from an in-memory list
func NewFeatured(refs []ItemRef) FeaturedRegistry {
	reg := &featuredRegistry{index: make(map[string]bool)}
	for _, ref := range refs {
		normalized := ItemRef{Contract: strings.ToLower(ref.Contract), Token: ref.Token}
		reg.items = append(reg.items, normalized)
		reg.index[normalized.Contract+":"+normalized.Token] = true
	}
	return reg
}

// Items returns the curated item list in display order
func (r *featuredRegistry) Items() []ItemRef {
	if r == nil {
		return nil
	}
	return r.items
}

// Contains checks whether an item is on the featured list
func (r *featuredRegistry) Contains(contractAddress, tokenIdentifier string) bool {
	if r == nil {
		return false
	}
	return r.index[strings.ToLower(contractAddress)+":"+tokenIdentifier]
}
