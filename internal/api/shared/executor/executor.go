package executor

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/artfolio/artfolio-api/internal/adapter"
	"github.com/artfolio/artfolio-api/internal/api/shared/constants"
	"github.com/artfolio/artfolio-api/internal/api/shared/dto"
	apierrors "github.com/artfolio/artfolio-api/internal/api/shared/errors"
	"github.com/artfolio/artfolio-api/internal/cache"
	"github.com/artfolio/artfolio-api/internal/domain"
	"github.com/artfolio/artfolio-api/internal/logger"
	"github.com/artfolio/artfolio-api/internal/marketplace"
	"github.com/artfolio/artfolio-api/internal/registry"
	"github.com/artfolio/artfolio-api/internal/store"
	"github.com/artfolio/artfolio-api/internal/voting"
)

// Executor is the interface for the API executor. It holds the business logic
// behind every route: cache-fronted reads against the upstream marketplace and
// the local aggregations, plus vote and registration writes.
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// GetItem retrieves one marketplace item with its net like count. The
	// upstream detail is cached; the like count is always read live.
	GetItem(ctx context.Context, contractAddress, tokenIdentifier string) (*dto.ItemResponse, error)

	// SubmitVote records a like or unlike from the given wallet
	SubmitVote(ctx context.Context, walletAddress, contractAddress, tokenIdentifier string, req dto.VoteRequest) (*dto.VoteResponse, error)

	// GetFeatured retrieves the curated featured items
	GetFeatured(ctx context.Context) ([]dto.ItemResponse, error)

	// GetLeaderboard retrieves the top creators by aggregate likes
	GetLeaderboard(ctx context.Context) ([]dto.LeaderboardEntryResponse, error)

	// GetProfile retrieves the full profile view for a wallet address;
	// nil when the address is unknown both locally and upstream
	GetProfile(ctx context.Context, address string) (*dto.ProfileResponse, error)

	// GetCollection retrieves an upstream collection listing
	GetCollection(ctx context.Context, slug, orderBy, orderDirection string) ([]marketplace.Asset, error)

	// RegisterUser creates or refreshes the wallet and returns its profile
	RegisterUser(ctx context.Context, address string) (*dto.UserResponse, error)
}

type executor struct {
	store       store.Store
	cache       cache.Cache
	marketplace marketplace.Client
	voting      voting.Service
	featured    registry.FeaturedRegistry
	json        adapter.JSON
}

// NewExecutor creates a new API executor
func NewExecutor(
	store store.Store,
	cache cache.Cache,
	marketplaceClient marketplace.Client,
	votingService voting.Service,
	featured registry.FeaturedRegistry,
	json adapter.JSON,
) Executor {
	return &executor{
		store:       store,
		cache:       cache,
		marketplace: marketplaceClient,
		voting:      votingService,
		featured:    featured,
		json:        json,
	}
}

// cached runs compute behind the cache entry at key. Cache failures degrade
// to a direct compute; compute failures are never cached.
func cached[T any](ctx context.Context, e *executor, key string, compute func(context.Context) (T, error)) (T, error) {
	var zero T

	raw, hit, err := e.cache.Get(ctx, key)
	if err != nil {
		logger.Warn("cache read failed", zap.Error(err), zap.String("key", key))
	} else if hit {
		var value T
		if err := e.json.Unmarshal([]byte(raw), &value); err == nil {
			return value, nil
		}
		logger.Warn("discarding undecodable cache entry", zap.String("key", key))
	}

	value, err := compute(ctx)
	if err != nil {
		return zero, err
	}

	encoded, err := e.json.Marshal(value)
	if err != nil {
		return zero, fmt.Errorf("failed to encode cache entry: %w", err)
	}
	if err := e.cache.Set(ctx, key, string(encoded)); err != nil {
		logger.Warn("cache write failed", zap.Error(err), zap.String("key", key))
	}

	return value, nil
}

// mapUpstreamErr converts a marketplace call failure into an API error,
// passing the upstream status code through when one is available
func mapUpstreamErr(err error, message string) *apierrors.APIError {
	if upstream, ok := domain.AsUpstreamError(err); ok {
		return apierrors.NewUpstreamError(upstream.StatusCode, message)
	}
	return apierrors.NewInternalError(message)
}

func (e *executor) GetItem(ctx context.Context, contractAddress, tokenIdentifier string) (*dto.ItemResponse, error) {
	asset, err := cached(ctx, e, cache.ItemKey(contractAddress, tokenIdentifier), func(ctx context.Context) (*marketplace.Asset, error) {
		return e.marketplace.GetAsset(ctx, contractAddress, tokenIdentifier)
	})
	if err != nil {
		return nil, mapUpstreamErr(err, "Failed to get item")
	}

	likes, err := e.store.TokenLikeCount(ctx, contractAddress, tokenIdentifier)
	if err != nil {
		return nil, apierrors.NewInternalError("Failed to get like count")
	}

	return &dto.ItemResponse{Asset: *asset, Likes: likes}, nil
}

func (e *executor) SubmitVote(ctx context.Context, walletAddress, contractAddress, tokenIdentifier string, req dto.VoteRequest) (*dto.VoteResponse, error) {
	input := voting.SubmitInput{
		WalletAddress:   walletAddress,
		ContractAddress: contractAddress,
		TokenIdentifier: tokenIdentifier,
		Action:          domain.Action(req.Action),
	}
	if req.CreatorAddress != nil {
		input.Creator = &voting.CreatorHint{
			Address: *req.CreatorAddress,
			Name:    req.CreatorName,
			ImgURL:  req.CreatorImgURL,
		}
	}

	recorded, err := e.voting.Submit(ctx, input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAction) || errors.Is(err, domain.ErrInvalidAddress) {
			return nil, apierrors.NewValidationError(err.Error())
		}
		logger.ErrorCtx(ctx, fmt.Errorf("vote submission failed: %w", err),
			zap.String("wallet", walletAddress),
			zap.String("contract", contractAddress),
			zap.String("token", tokenIdentifier),
		)
		return nil, apierrors.NewInternalError("Failed to record vote")
	}

	return &dto.VoteResponse{Recorded: recorded}, nil
}

// GetFeatured resolves every curated item through the upstream marketplace.
// The assembled response is cached wholesale and never invalidated, so like
// counts in it freeze at first assembly.
func (e *executor) GetFeatured(ctx context.Context) ([]dto.ItemResponse, error) {
	items, err := cached(ctx, e, cache.FeaturedKey(), func(ctx context.Context) ([]dto.ItemResponse, error) {
		refs := e.featured.Items()
		items := make([]dto.ItemResponse, 0, len(refs))
		for _, ref := range refs {
			asset, err := e.marketplace.GetAsset(ctx, ref.Contract, ref.Token)
			if err != nil {
				return nil, err
			}
			likes, err := e.store.TokenLikeCount(ctx, ref.Contract, ref.Token)
			if err != nil {
				return nil, err
			}
			items = append(items, dto.ItemResponse{Asset: *asset, Likes: likes})
		}
		return items, nil
	})
	if err != nil {
		return nil, mapUpstreamErr(err, "Failed to get featured items")
	}
	return items, nil
}

func (e *executor) GetLeaderboard(ctx context.Context) ([]dto.LeaderboardEntryResponse, error) {
	entries, err := cached(ctx, e, cache.LeaderboardKey(), func(ctx context.Context) ([]dto.LeaderboardEntryResponse, error) {
		rows, err := e.store.Leaderboard(ctx, constants.LEADERBOARD_LIMIT)
		if err != nil {
			return nil, err
		}
		return dto.MapLeaderboard(rows), nil
	})
	if err != nil {
		return nil, apierrors.NewInternalError("Failed to get leaderboard")
	}
	return entries, nil
}

func (e *executor) GetProfile(ctx context.Context, address string) (*dto.ProfileResponse, error) {
	wallet, err := e.store.GetWalletByAddress(ctx, address)
	if err != nil {
		return nil, apierrors.NewInternalError("Failed to get wallet")
	}

	if wallet == nil {
		return e.unknownWalletProfile(ctx, address)
	}

	profileID := *wallet.ProfileID

	info, err := cached(ctx, e, cache.WalletInfoKey(address), func(ctx context.Context) (dto.ProfileInfo, error) {
		return e.profileInfo(ctx, wallet.Address, profileID)
	})
	if err != nil {
		return nil, apierrors.NewInternalError("Failed to get profile info")
	}

	owned, err := cached(ctx, e, cache.WalletOwnedKey(address), func(ctx context.Context) ([]marketplace.Asset, error) {
		return e.marketplace.ListAssets(ctx, marketplace.AssetQuery{
			Owners: info.Addresses,
			Limit:  constants.DEFAULT_LISTING_LIMIT,
		})
	})
	if err != nil {
		return nil, mapUpstreamErr(err, "Failed to get owned items")
	}

	liked, err := cached(ctx, e, cache.WalletLikedTokensKey(address), func(ctx context.Context) ([]dto.LikedTokenResponse, error) {
		rows, err := e.store.LikedTokens(ctx, profileID, constants.DEFAULT_LIKED_TOKENS_LIMIT)
		if err != nil {
			return nil, err
		}
		return dto.MapLikedTokens(rows), nil
	})
	if err != nil {
		return nil, apierrors.NewInternalError("Failed to get liked items")
	}

	// The liked listing above is capped; the summary counts the whole ledger
	likes, err := cached(ctx, e, cache.WalletLikesKey(address), func(ctx context.Context) (int64, error) {
		return e.store.LikedTokenCount(ctx, profileID)
	})
	if err != nil {
		return nil, apierrors.NewInternalError("Failed to get like summary")
	}

	return &dto.ProfileResponse{
		ProfileInfo: info,
		Likes:       likes,
		Owned:       owned,
		Liked:       liked,
	}, nil
}

// unknownWalletProfile serves an address that never authenticated here. The
// upstream marketplace may still know it as an owner; when it does not either,
// the profile does not exist.
func (e *executor) unknownWalletProfile(ctx context.Context, address string) (*dto.ProfileResponse, error) {
	owned, err := e.marketplace.ListAssets(ctx, marketplace.AssetQuery{
		Owners: []string{address},
		Limit:  constants.DEFAULT_LISTING_LIMIT,
	})
	if err != nil {
		return nil, mapUpstreamErr(err, "Failed to get owned items")
	}
	if len(owned) == 0 {
		return nil, nil
	}

	return &dto.ProfileResponse{
		ProfileInfo: dto.ProfileInfo{
			Address:   address,
			Addresses: []string{address},
		},
		Owned: owned,
		Liked: []dto.LikedTokenResponse{},
	}, nil
}

func (e *executor) profileInfo(ctx context.Context, address string, profileID int64) (dto.ProfileInfo, error) {
	profile, err := e.store.GetProfile(ctx, profileID)
	if err != nil {
		return dto.ProfileInfo{}, err
	}
	if profile == nil {
		return dto.ProfileInfo{}, fmt.Errorf("wallet %s references missing profile %d", address, profileID)
	}

	addresses, err := e.store.ProfileAddresses(ctx, profileID)
	if err != nil {
		return dto.ProfileInfo{}, err
	}

	return dto.ProfileInfo{
		Address:   address,
		Addresses: addresses,
		Name:      profile.Name,
		ImgURL:    profile.ImgURL,
		Twitter:   profile.Twitter,
	}, nil
}

func (e *executor) GetCollection(ctx context.Context, slug, orderBy, orderDirection string) ([]marketplace.Asset, error) {
	assets, err := cached(ctx, e, cache.CollectionKey(slug, orderBy, orderDirection), func(ctx context.Context) ([]marketplace.Asset, error) {
		return e.marketplace.ListAssets(ctx, marketplace.AssetQuery{
			Collection:     slug,
			OrderBy:        orderBy,
			OrderDirection: orderDirection,
			Limit:          constants.DEFAULT_LISTING_LIMIT,
		})
	})
	if err != nil {
		return nil, mapUpstreamErr(err, "Failed to get collection")
	}
	return assets, nil
}

func (e *executor) RegisterUser(ctx context.Context, address string) (*dto.UserResponse, error) {
	wallet, err := e.store.ResolveOrCreateWallet(ctx, address)
	if err != nil {
		return nil, apierrors.NewInternalError("Failed to register wallet")
	}

	profile, err := e.store.GetProfile(ctx, *wallet.ProfileID)
	if err != nil || profile == nil {
		return nil, apierrors.NewInternalError("Failed to get profile")
	}

	addresses, err := e.store.ProfileAddresses(ctx, *wallet.ProfileID)
	if err != nil {
		return nil, apierrors.NewInternalError("Failed to get profile addresses")
	}

	return &dto.UserResponse{
		Address:   wallet.Address,
		Addresses: addresses,
		Name:      profile.Name,
		ImgURL:    profile.ImgURL,
		Twitter:   profile.Twitter,
		Email:     wallet.Email,
	}, nil
}
