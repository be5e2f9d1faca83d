package dto

import (
	"time"

	apierrors "github.com/artfolio/artfolio-api/internal/api/shared/errors"
	"github.com/artfolio/artfolio-api/internal/marketplace"
	"github.com/artfolio/artfolio-api/internal/store"
)

// DataEnvelope wraps every successful response body
type DataEnvelope struct {
	Data any `json:"data"`
}

// ErrorEnvelope wraps every error response body
type ErrorEnvelope struct {
	Error *apierrors.APIError `json:"error"`
}

// ItemResponse is one marketplace item with its net like count
type ItemResponse struct {
	marketplace.Asset
	Likes int64 `json:"likes"`
}

// VoteResponse reports the outcome of a vote submission. Recorded is false
// when the submission duplicated the previous vote and was absorbed.
type VoteResponse struct {
	Recorded bool `json:"recorded"`
}

// LeaderboardEntryResponse is one creator row in the leaderboard
type LeaderboardEntryResponse struct {
	Address string  `json:"address"`
	Name    *string `json:"name"`
	ImgURL  *string `json:"img_url"`
	Likes   int64   `json:"likes"`
}

// LikedTokenResponse is one item a profile currently likes
type LikedTokenResponse struct {
	Contract  string    `json:"contract"`
	Token     string    `json:"token"`
	Likes     int64     `json:"likes"`
	LastLiked time.Time `json:"last_liked"`
}

// ProfileInfo is the display portion of a profile response
type ProfileInfo struct {
	Address   string   `json:"address"`
	Addresses []string `json:"addresses"`
	Name      *string  `json:"name"`
	ImgURL    *string  `json:"img_url"`
	Twitter   *string  `json:"twitter"`
}

// ProfileResponse is the full profile view: display info, owned items from
// the upstream marketplace across all linked addresses, and the locally
// aggregated liked items
type ProfileResponse struct {
	ProfileInfo
	Likes int64                `json:"likes"`
	Owned []marketplace.Asset  `json:"owned"`
	Liked []LikedTokenResponse `json:"liked"`
}

// UserResponse is returned by user registration
type UserResponse struct {
	Address   string   `json:"address"`
	Addresses []string `json:"addresses"`
	Name      *string  `json:"name"`
	ImgURL    *string  `json:"img_url"`
	Twitter   *string  `json:"twitter"`
	Email     *string  `json:"email"`
}

// MapLeaderboard reshapes store rows into response entries
func MapLeaderboard(entries []store.LeaderboardEntry) []LeaderboardEntryResponse {
	out := make([]LeaderboardEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = LeaderboardEntryResponse{
			Address: e.CreatorAddress,
			Name:    e.Name,
			ImgURL:  e.ImgURL,
			Likes:   e.Likes,
		}
	}
	return out
}

// MapLikedTokens reshapes store rows into response entries
func MapLikedTokens(tokens []store.LikedToken) []LikedTokenResponse {
	out := make([]LikedTokenResponse, len(tokens))
	for i, t := range tokens {
		out[i] = LikedTokenResponse{
			Contract:  t.ContractAddress,
			Token:     t.TokenIdentifier,
			Likes:     t.Likes,
			LastLiked: t.LastLiked,
		}
	}
	return out
}
