package store

import (
	"context"
	"time"

	"github.com/artfolio/artfolio-api/internal/store/schema"
)

// LikedToken is one positive-net group in a profile's like aggregation
type LikedToken struct {
	ContractAddress string    `gorm:"column:contract_address"`
	TokenIdentifier string    `gorm:"column:token_identifier"`
	Likes           int64     `gorm:"column:likes"`
	LastLiked       time.Time `gorm:"column:last_liked"`
}

// LeaderboardEntry is one creator row in the top-creator leaderboard
type LeaderboardEntry struct {
	ProfileID      int64   `gorm:"column:profile_id"`
	Name           *string `gorm:"column:name"`
	ImgURL         *string `gorm:"column:img_url"`
	CreatorAddress string  `gorm:"column:creator_address"`
	Likes          int64   `gorm:"column:likes"`
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// ResolveOrCreateWallet looks up a wallet by address, creating it (and an
	// empty profile when it has none) on first reference. It bumps the
	// wallet's last_authenticated timestamp as a side effect.
	ResolveOrCreateWallet(ctx context.Context, address string) (*schema.Wallet, error)
	// GetWalletByAddress retrieves a wallet by address; nil when absent
	GetWalletByAddress(ctx context.Context, address string) (*schema.Wallet, error)
	// ProfileAddresses returns all wallet addresses sharing a profile
	ProfileAddresses(ctx context.Context, profileID int64) ([]string, error)
	// GetProfile retrieves a profile by ID; nil when absent
	GetProfile(ctx context.Context, profileID int64) (*schema.Profile, error)
	// UpdateProfileIfEmpty backfills the profile's name and image URL, but
	// only for fields that are currently null
	UpdateProfileIfEmpty(ctx context.Context, profileID int64, name, imgURL *string) error

	// GetOrCreateContract looks up a contract by address, creating it on first reference
	GetOrCreateContract(ctx context.Context, address string) (*schema.Contract, error)
	// GetOrCreateToken looks up a token by (contract, identifier), creating it on first reference
	GetOrCreateToken(ctx context.Context, contractID int64, tokenIdentifier string) (*schema.Token, error)
	// SetTokenCreatorIfAbsent attaches a creator wallet to a token when no
	// creator is recorded yet. Returns whether the creator was set.
	SetTokenCreatorIfAbsent(ctx context.Context, tokenID, walletID int64) (bool, error)

	// RecordVote appends a ledger entry for (profile, token) unless the
	// most-recent entry already carries the same value. The check and the
	// append run in one serializable transaction. Returns whether a row was
	// appended.
	RecordVote(ctx context.Context, profileID, tokenID int64, value int) (bool, error)
	// ListVotes returns the full ledger for (profile, token) in append order
	ListVotes(ctx context.Context, profileID, tokenID int64) ([]schema.LikeHistory, error)

	// LikedTokens returns the positive-net token groups for a profile,
	// most recently liked first
	LikedTokens(ctx context.Context, profileID int64, limit int) ([]LikedToken, error)
	// LikedTokenCount returns how many tokens the profile has a strictly
	// positive net like for, unbounded by any listing limit
	LikedTokenCount(ctx context.Context, profileID int64) (int64, error)
	// TokenLikeCount returns the net like count for one (contract, token)
	// pair; zero when no ledger rows exist
	TokenLikeCount(ctx context.Context, contractAddress, tokenIdentifier string) (int64, error)
	// Leaderboard returns creators with strictly positive aggregate likes,
	// ordered by likes descending
	Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error)
}
