package dto

import (
	"errors"

	"github.com/artfolio/artfolio-api/internal/domain"
)

// VoteRequest is the body of a vote submission
type VoteRequest struct {
	// Action is "like" or "unlike"
	Action string `json:"action"`

	// Creator hint, honored only on a like against a token with no
	// recorded creator
	CreatorAddress *string `json:"creator_address,omitempty"`
	CreatorName    *string `json:"creator_name,omitempty"`
	CreatorImgURL  *string `json:"creator_img_url,omitempty"`
}

// Validate checks the vote request fields
func (r *VoteRequest) Validate() error {
	if r.Action == "" {
		return errors.New("action is required")
	}
	if !domain.Action(r.Action).Valid() {
		return errors.New("action must be \"like\" or \"unlike\"")
	}
	return nil
}
