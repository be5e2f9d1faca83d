package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"

	"github.com/artfolio/artfolio-api/internal/domain"
	"github.com/artfolio/artfolio-api/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Migrate creates or updates the database schema for all persisted entities
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.Profile{},
		&schema.Wallet{},
		&schema.Contract{},
		&schema.Token{},
		&schema.LikeHistory{},
	)
}

func hasDBResolver(db *gorm.DB) bool {
	return db != nil && db.Callback().Query().Get("gorm:db_resolver") != nil
}

// reader returns a session routed to the read replica when a resolver is
// registered; aggregation queries go through it
func (s *pgStore) reader(ctx context.Context) *gorm.DB {
	db := s.db.WithContext(ctx)
	if hasDBResolver(s.db) {
		return db.Clauses(dbresolver.Read)
	}
	return db
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults:
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// ResolveOrCreateWallet looks up a wallet by address, creating it on first
// reference. A wallet that has no profile gets a fresh empty one attached, so
// every wallet used in an authenticated action resolves to a profile.
func (s *pgStore) ResolveOrCreateWallet(ctx context.Context, address string) (*schema.Wallet, error) {
	address = domain.NormalizeAddress(address)
	var wallet *schema.Wallet
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Idempotent insert guarded by the unique index on address
		candidate := schema.Wallet{Address: address}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "address"}},
			DoNothing: true,
		}).Create(&candidate).Error; err != nil {
			return fmt.Errorf("failed to insert wallet: %w", err)
		}

		// Lock the row so a concurrent first-reference waits here and sees
		// the profile attached by whichever transaction committed first
		var w schema.Wallet
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("address = ?", address).First(&w).Error; err != nil {
			return fmt.Errorf("failed to fetch wallet: %w", err)
		}

		if w.ProfileID == nil {
			profile := schema.Profile{}
			if err := tx.Create(&profile).Error; err != nil {
				return fmt.Errorf("failed to create profile: %w", err)
			}
			w.ProfileID = &profile.ID
		}

		now := time.Now().UTC()
		w.LastAuthenticated = &now
		if err := tx.Model(&schema.Wallet{}).Where("id = ?", w.ID).
			Updates(map[string]interface{}{
				"profile_id":         w.ProfileID,
				"last_authenticated": w.LastAuthenticated,
			}).Error; err != nil {
			return fmt.Errorf("failed to update wallet: %w", err)
		}

		wallet = &w
		return nil
	})
	if err != nil {
		return nil, err
	}
	return wallet, nil
}

// GetWalletByAddress retrieves a wallet by address
func (s *pgStore) GetWalletByAddress(ctx context.Context, address string) (*schema.Wallet, error) {
	var wallet schema.Wallet
	err := s.db.WithContext(ctx).Where("address = ?", domain.NormalizeAddress(address)).First(&wallet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

func (s *pgStore) GetProfile(ctx context.Context, profileID int64) (*schema.Profile, error) {
	var profile schema.Profile
	err := s.reader(ctx).Where("id = ?", profileID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

// ProfileAddresses returns all wallet addresses sharing a profile. Used to
// broaden owned-item queries across a user's linked wallets.
func (s *pgStore) ProfileAddresses(ctx context.Context, profileID int64) ([]string, error) {
	var addresses []string
	err := s.reader(ctx).
		Model(&schema.Wallet{}).
		Where("profile_id = ?", profileID).
		Order("address").
		Pluck("address", &addresses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get profile addresses: %w", err)
	}
	return addresses, nil
}

// UpdateProfileIfEmpty backfills name and image URL on a profile, touching
// only fields that are currently null
func (s *pgStore) UpdateProfileIfEmpty(ctx context.Context, profileID int64, name, imgURL *string) error {
	if name == nil && imgURL == nil {
		return nil
	}

	err := s.db.WithContext(ctx).
		Model(&schema.Profile{}).
		Where("id = ?", profileID).
		Updates(map[string]interface{}{
			"name":    gorm.Expr("COALESCE(name, ?)", name),
			"img_url": gorm.Expr("COALESCE(img_url, ?)", imgURL),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to backfill profile: %w", err)
	}
	return nil
}

// GetOrCreateContract looks up a contract by address, creating it on first reference
func (s *pgStore) GetOrCreateContract(ctx context.Context, address string) (*schema.Contract, error) {
	address = domain.NormalizeAddress(address)
	candidate := schema.Contract{Address: address}
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address"}},
		DoNothing: true,
	}).Create(&candidate).Error; err != nil {
		return nil, fmt.Errorf("failed to insert contract: %w", err)
	}

	var contract schema.Contract
	if err := s.db.WithContext(ctx).Where("address = ?", address).First(&contract).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch contract: %w", err)
	}
	return &contract, nil
}

// GetOrCreateToken looks up a token by (contract, identifier), creating it on first reference
func (s *pgStore) GetOrCreateToken(ctx context.Context, contractID int64, tokenIdentifier string) (*schema.Token, error) {
	candidate := schema.Token{ContractID: contractID, TokenIdentifier: tokenIdentifier}
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "contract_id"}, {Name: "token_identifier"}},
		DoNothing: true,
	}).Create(&candidate).Error; err != nil {
		return nil, fmt.Errorf("failed to insert token: %w", err)
	}

	var token schema.Token
	if err := s.db.WithContext(ctx).
		Where("contract_id = ? AND token_identifier = ?", contractID, tokenIdentifier).
		First(&token).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch token: %w", err)
	}
	return &token, nil
}

// SetTokenCreatorIfAbsent attaches a creator wallet to a token when no
// creator is recorded yet. The guard is in the WHERE clause so the creator is
// set at most once regardless of interleaving.
func (s *pgStore) SetTokenCreatorIfAbsent(ctx context.Context, tokenID, walletID int64) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Token{}).
		Where("id = ? AND creator_id IS NULL", tokenID).
		Update("creator_id", walletID)
	if result.Error != nil {
		return false, fmt.Errorf("failed to set token creator: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// RecordVote appends a ledger entry for (profile, token) unless the
// most-recent entry already carries the same value. Running the check and the
// append in one serializable transaction closes the window where two
// identical concurrent submissions could both observe a stale tail and
// double-insert.
func (s *pgStore) RecordVote(ctx context.Context, profileID, tokenID int64, value int) (bool, error) {
	appended := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var last schema.LikeHistory
		err := tx.Where("profile_id = ? AND token_id = ?", profileID, tokenID).
			Order("added DESC, id DESC").
			First(&last).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to read ledger tail: %w", err)
		}

		if err == nil && last.Value == value {
			// Duplicate consecutive submission, silently absorbed
			return nil
		}

		entry := schema.LikeHistory{
			TokenID:   tokenID,
			ProfileID: profileID,
			Value:     value,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to append ledger entry: %w", err)
		}
		appended = true
		return nil
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return false, err
	}
	return appended, nil
}

// ListVotes returns the full ledger for (profile, token) in append order
func (s *pgStore) ListVotes(ctx context.Context, profileID, tokenID int64) ([]schema.LikeHistory, error) {
	var entries []schema.LikeHistory
	err := s.db.WithContext(ctx).
		Where("profile_id = ? AND token_id = ?", profileID, tokenID).
		Order("added ASC, id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}
	return entries, nil
}

// LikedTokens returns the positive-net token groups for a profile. The
// is-liked predicate is SUM(value) > 0 over the grouped ledger, not
// last-entry-is-positive; under a well-formed ledger the two agree.
func (s *pgStore) LikedTokens(ctx context.Context, profileID int64, limit int) ([]LikedToken, error) {
	var rows []LikedToken
	err := s.reader(ctx).
		Model(&schema.LikeHistory{}).
		Select("contracts.address AS contract_address, tokens.token_identifier AS token_identifier, SUM(like_history.value) AS likes, MAX(like_history.added) AS last_liked").
		Joins("JOIN tokens ON tokens.id = like_history.token_id").
		Joins("JOIN contracts ON contracts.id = tokens.contract_id").
		Where("like_history.profile_id = ?", profileID).
		Group("contracts.address, tokens.token_identifier").
		Having("SUM(like_history.value) > 0").
		Order("MAX(like_history.added) DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query liked tokens: %w", err)
	}
	return rows, nil
}

// TokenLikeCount returns the net like count for one (contract, token) pair.
// Zero when no ledger rows exist; may be negative when unlikes outnumber
// likes historically.
func (s *pgStore) TokenLikeCount(ctx context.Context, contractAddress, tokenIdentifier string) (int64, error) {
	var count int64
	err := s.reader(ctx).
		Model(&schema.LikeHistory{}).
		Select("COALESCE(SUM(like_history.value), 0)").
		Joins("JOIN tokens ON tokens.id = like_history.token_id").
		Joins("JOIN contracts ON contracts.id = tokens.contract_id").
		Where("contracts.address = ? AND tokens.token_identifier = ?", domain.NormalizeAddress(contractAddress), tokenIdentifier).
		Scan(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to query token like count: %w", err)
	}
	return count, nil
}

// LikedTokenCount returns how many tokens a profile currently likes. Counted
// over the full ledger so the total is not bounded by any listing limit.
func (s *pgStore) LikedTokenCount(ctx context.Context, profileID int64) (int64, error) {
	liked := s.reader(ctx).
		Model(&schema.LikeHistory{}).
		Select("like_history.token_id").
		Where("like_history.profile_id = ?", profileID).
		Group("like_history.token_id").
		Having("SUM(like_history.value) > 0")

	var count int64
	err := s.reader(ctx).Table("(?) AS liked", liked).Select("COUNT(*)").Scan(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to query liked token count: %w", err)
	}
	return count, nil
}

// Leaderboard returns creators with strictly positive aggregate likes across
// all of their tokens, ordered by likes descending, then creator name
// descending, then most recent like descending.
func (s *pgStore) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	var rows []LeaderboardEntry
	err := s.reader(ctx).
		Model(&schema.LikeHistory{}).
		Select("profiles.id AS profile_id, profiles.name AS name, profiles.img_url AS img_url, MIN(wallets.address) AS creator_address, SUM(like_history.value) AS likes").
		Joins("JOIN tokens ON tokens.id = like_history.token_id").
		Joins("JOIN wallets ON wallets.id = tokens.creator_id").
		Joins("JOIN profiles ON profiles.id = wallets.profile_id").
		Group("profiles.id, profiles.name, profiles.img_url").
		Having("SUM(like_history.value) > 0").
		Order("likes DESC, name DESC, MAX(like_history.added) DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	return rows, nil
}
