package voting

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/artfolio/artfolio-api/internal/cache"
	"github.com/artfolio/artfolio-api/internal/domain"
	"github.com/artfolio/artfolio-api/internal/logger"
	"github.com/artfolio/artfolio-api/internal/store"
)

// CreatorHint carries the client-supplied creator metadata attached to a like
// action. It is used to bootstrap leaderboard data the first time any viewer
// likes a piece.
type CreatorHint struct {
	Address string
	Name    *string
	ImgURL  *string
}

// SubmitInput is one vote submission
type SubmitInput struct {
	// WalletAddress is the voting wallet, already identity-verified
	WalletAddress string
	// ContractAddress and TokenIdentifier locate the voted-on item
	ContractAddress string
	TokenIdentifier string
	// Action is "like" or "unlike"
	Action domain.Action
	// Creator is the optional creator hint; only honored on a like
	Creator *CreatorHint
}

// Service records votes in the like ledger
//
//go:generate mockgen -source=service.go -destination=../mocks/voting_service.go -package=mocks -mock_names=Service=MockVotingService
type Service interface {
	// Submit records one vote. Duplicate consecutive submissions are a
	// silent no-op; the returned bool reports whether a ledger row was
	// appended.
	Submit(ctx context.Context, input SubmitInput) (bool, error)
}

type service struct {
	store store.Store
	cache cache.Cache
}

// NewService creates a voting service
func NewService(store store.Store, cache cache.Cache) Service {
	return &service{store: store, cache: cache}
}

// Submit records one vote: resolve the voter's identity, get-or-create the
// item, run the deduplicated ledger append, apply the one-time creator
// backfill, and drop the cache entries the vote invalidates.
func (s *service) Submit(ctx context.Context, input SubmitInput) (bool, error) {
	if !input.Action.Valid() {
		return false, domain.ErrInvalidAction
	}
	if !domain.ValidAddress(input.WalletAddress) {
		return false, domain.ErrInvalidAddress
	}

	wallet, err := s.store.ResolveOrCreateWallet(ctx, input.WalletAddress)
	if err != nil {
		return false, fmt.Errorf("failed to resolve voter wallet: %w", err)
	}

	contract, err := s.store.GetOrCreateContract(ctx, input.ContractAddress)
	if err != nil {
		return false, fmt.Errorf("failed to resolve contract: %w", err)
	}

	token, err := s.store.GetOrCreateToken(ctx, contract.ID, input.TokenIdentifier)
	if err != nil {
		return false, fmt.Errorf("failed to resolve token: %w", err)
	}

	if input.Action == domain.ActionLike && input.Creator != nil {
		if err := s.attachCreator(ctx, token.ID, input.Creator); err != nil {
			return false, err
		}
	}

	appended, err := s.store.RecordVote(ctx, *wallet.ProfileID, token.ID, input.Action.Value())
	if err != nil {
		return false, fmt.Errorf("failed to record vote: %w", err)
	}

	if appended {
		keys := cache.VoteInvalidationKeys(input.WalletAddress)
		if err := s.cache.Delete(ctx, keys...); err != nil {
			// The ledger row is committed; stale cache entries recompute on
			// the next miss, so the vote still succeeds
			logger.Warn("failed to invalidate cache after vote",
				zap.Error(err),
				zap.String("wallet", input.WalletAddress),
			)
		}
	}

	return appended, nil
}

// attachCreator resolves the hinted creator wallet and attaches it as the
// token's creator when none is recorded. The profile name/image backfill only
// happens when this call is the one that set the creator, so a later hint for
// an already-attributed token changes nothing.
func (s *service) attachCreator(ctx context.Context, tokenID int64, hint *CreatorHint) error {
	if !domain.ValidAddress(hint.Address) {
		// Malformed hints are ignored rather than rejected; the vote itself
		// is still valid
		return nil
	}

	creator, err := s.store.ResolveOrCreateWallet(ctx, hint.Address)
	if err != nil {
		return fmt.Errorf("failed to resolve creator wallet: %w", err)
	}

	set, err := s.store.SetTokenCreatorIfAbsent(ctx, tokenID, creator.ID)
	if err != nil {
		return fmt.Errorf("failed to attach token creator: %w", err)
	}
	if !set {
		return nil
	}

	if err := s.store.UpdateProfileIfEmpty(ctx, *creator.ProfileID, hint.Name, hint.ImgURL); err != nil {
		return fmt.Errorf("failed to backfill creator profile: %w", err)
	}
	return nil
}
