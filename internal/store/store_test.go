package store

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artfolio/artfolio-api/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// testAddress builds a deterministic well-formed address from a number
func testAddress(n int) string {
	return fmt.Sprintf("0x%040d", n)
}

func strPtr(s string) *string {
	return &s
}

// seedVotedToken creates a contract and token and returns both
func seedVotedToken(t *testing.T, s Store, contractNum int, tokenIdentifier string) (*schema.Contract, *schema.Token) {
	ctx := context.Background()

	contract, err := s.GetOrCreateContract(ctx, testAddress(contractNum))
	require.NoError(t, err)

	token, err := s.GetOrCreateToken(ctx, contract.ID, tokenIdentifier)
	require.NoError(t, err)

	return contract, token
}

// linkWalletToProfile reattaches a wallet to another wallet's profile,
// simulating the out-of-band address merge flow
func linkWalletToProfile(t *testing.T, s Store, walletID, profileID int64) {
	pg, ok := s.(*pgStore)
	require.True(t, ok, "expected pgStore")
	err := pg.db.Model(&schema.Wallet{}).Where("id = ?", walletID).
		Update("profile_id", profileID).Error
	require.NoError(t, err)
}

// =============================================================================
// Test Suite Runner
// =============================================================================

// RunStoreTests runs the full store suite against an implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"ResolveOrCreateWallet", testResolveOrCreateWallet},
		{"ProfileAddresses", testProfileAddresses},
		{"GetProfile", testGetProfile},
		{"UpdateProfileIfEmpty", testUpdateProfileIfEmpty},
		{"GetOrCreateContractAndToken", testGetOrCreateContractAndToken},
		{"SetTokenCreatorIfAbsent", testSetTokenCreatorIfAbsent},
		{"RecordVote", testRecordVote},
		{"LikedTokens", testLikedTokens},
		{"LikedTokenCount", testLikedTokenCount},
		{"TokenLikeCount", testTokenLikeCount},
		{"AddressCaseFolding", testAddressCaseFolding},
		{"Leaderboard", testLeaderboard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}

// =============================================================================
// Identity
// =============================================================================

func testResolveOrCreateWallet(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("first reference creates wallet and profile", func(t *testing.T) {
		wallet, err := s.ResolveOrCreateWallet(ctx, testAddress(100))
		require.NoError(t, err)
		require.NotNil(t, wallet)

		assert.Equal(t, testAddress(100), wallet.Address)
		require.NotNil(t, wallet.ProfileID)
		require.NotNil(t, wallet.LastAuthenticated)

		profile, err := s.GetProfile(ctx, *wallet.ProfileID)
		require.NoError(t, err)
		require.NotNil(t, profile)
		assert.Nil(t, profile.Name)
	})

	t.Run("second reference is idempotent and bumps last_authenticated", func(t *testing.T) {
		first, err := s.ResolveOrCreateWallet(ctx, testAddress(101))
		require.NoError(t, err)

		time.Sleep(5 * time.Millisecond)

		second, err := s.ResolveOrCreateWallet(ctx, testAddress(101))
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, *first.ProfileID, *second.ProfileID)
		assert.True(t, second.LastAuthenticated.After(*first.LastAuthenticated))
	})

	t.Run("distinct wallets get distinct profiles", func(t *testing.T) {
		a, err := s.ResolveOrCreateWallet(ctx, testAddress(102))
		require.NoError(t, err)
		b, err := s.ResolveOrCreateWallet(ctx, testAddress(103))
		require.NoError(t, err)

		assert.NotEqual(t, a.ID, b.ID)
		assert.NotEqual(t, *a.ProfileID, *b.ProfileID)
	})

	t.Run("unknown wallet lookup returns nil", func(t *testing.T) {
		wallet, err := s.GetWalletByAddress(ctx, testAddress(999))
		require.NoError(t, err)
		assert.Nil(t, wallet)
	})

	t.Run("known wallet lookup does not bump last_authenticated", func(t *testing.T) {
		created, err := s.ResolveOrCreateWallet(ctx, testAddress(104))
		require.NoError(t, err)

		time.Sleep(5 * time.Millisecond)

		found, err := s.GetWalletByAddress(ctx, testAddress(104))
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, created.ID, found.ID)
		require.NotNil(t, found.LastAuthenticated)
		assert.WithinDuration(t, *created.LastAuthenticated, *found.LastAuthenticated, time.Millisecond)
	})
}

func testProfileAddresses(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("single wallet profile returns one address", func(t *testing.T) {
		wallet, err := s.ResolveOrCreateWallet(ctx, testAddress(110))
		require.NoError(t, err)

		addresses, err := s.ProfileAddresses(ctx, *wallet.ProfileID)
		require.NoError(t, err)
		assert.Equal(t, []string{testAddress(110)}, addresses)
	})

	t.Run("merged wallets all resolve through the shared profile", func(t *testing.T) {
		primary, err := s.ResolveOrCreateWallet(ctx, testAddress(111))
		require.NoError(t, err)
		secondary, err := s.ResolveOrCreateWallet(ctx, testAddress(112))
		require.NoError(t, err)

		linkWalletToProfile(t, s, secondary.ID, *primary.ProfileID)

		addresses, err := s.ProfileAddresses(ctx, *primary.ProfileID)
		require.NoError(t, err)
		assert.Equal(t, []string{testAddress(111), testAddress(112)}, addresses)
	})

	t.Run("unknown profile returns empty list", func(t *testing.T) {
		addresses, err := s.ProfileAddresses(ctx, 987654)
		require.NoError(t, err)
		assert.Empty(t, addresses)
	})
}

func testGetProfile(t *testing.T, s Store) {
	ctx := context.Background()

	wallet, err := s.ResolveOrCreateWallet(ctx, testAddress(120))
	require.NoError(t, err)

	profile, err := s.GetProfile(ctx, *wallet.ProfileID)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, *wallet.ProfileID, profile.ID)

	missing, err := s.GetProfile(ctx, 987654)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func testUpdateProfileIfEmpty(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("backfills null fields", func(t *testing.T) {
		wallet, err := s.ResolveOrCreateWallet(ctx, testAddress(130))
		require.NoError(t, err)

		err = s.UpdateProfileIfEmpty(ctx, *wallet.ProfileID, strPtr("alice"), strPtr("https://img.example/alice.png"))
		require.NoError(t, err)

		profile, err := s.GetProfile(ctx, *wallet.ProfileID)
		require.NoError(t, err)
		require.NotNil(t, profile.Name)
		require.NotNil(t, profile.ImgURL)
		assert.Equal(t, "alice", *profile.Name)
		assert.Equal(t, "https://img.example/alice.png", *profile.ImgURL)
	})

	t.Run("does not overwrite existing fields", func(t *testing.T) {
		wallet, err := s.ResolveOrCreateWallet(ctx, testAddress(131))
		require.NoError(t, err)

		err = s.UpdateProfileIfEmpty(ctx, *wallet.ProfileID, strPtr("original"), nil)
		require.NoError(t, err)

		err = s.UpdateProfileIfEmpty(ctx, *wallet.ProfileID, strPtr("usurper"), strPtr("https://img.example/late.png"))
		require.NoError(t, err)

		profile, err := s.GetProfile(ctx, *wallet.ProfileID)
		require.NoError(t, err)
		require.NotNil(t, profile.Name)
		assert.Equal(t, "original", *profile.Name)
		// The image was still null, so it is backfilled
		require.NotNil(t, profile.ImgURL)
		assert.Equal(t, "https://img.example/late.png", *profile.ImgURL)
	})

	t.Run("nil inputs are a no-op", func(t *testing.T) {
		wallet, err := s.ResolveOrCreateWallet(ctx, testAddress(132))
		require.NoError(t, err)

		err = s.UpdateProfileIfEmpty(ctx, *wallet.ProfileID, nil, nil)
		require.NoError(t, err)

		profile, err := s.GetProfile(ctx, *wallet.ProfileID)
		require.NoError(t, err)
		assert.Nil(t, profile.Name)
		assert.Nil(t, profile.ImgURL)
	})
}

// =============================================================================
// Catalog
// =============================================================================

func testGetOrCreateContractAndToken(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("contract get-or-create is idempotent", func(t *testing.T) {
		first, err := s.GetOrCreateContract(ctx, testAddress(140))
		require.NoError(t, err)
		second, err := s.GetOrCreateContract(ctx, testAddress(140))
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("token get-or-create is idempotent per contract", func(t *testing.T) {
		contract, err := s.GetOrCreateContract(ctx, testAddress(141))
		require.NoError(t, err)

		first, err := s.GetOrCreateToken(ctx, contract.ID, "7")
		require.NoError(t, err)
		second, err := s.GetOrCreateToken(ctx, contract.ID, "7")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Nil(t, first.CreatorID)
	})

	t.Run("same identifier under different contracts is distinct", func(t *testing.T) {
		contractA, err := s.GetOrCreateContract(ctx, testAddress(142))
		require.NoError(t, err)
		contractB, err := s.GetOrCreateContract(ctx, testAddress(143))
		require.NoError(t, err)

		tokenA, err := s.GetOrCreateToken(ctx, contractA.ID, "1")
		require.NoError(t, err)
		tokenB, err := s.GetOrCreateToken(ctx, contractB.ID, "1")
		require.NoError(t, err)
		assert.NotEqual(t, tokenA.ID, tokenB.ID)
	})
}

func testSetTokenCreatorIfAbsent(t *testing.T, s Store) {
	ctx := context.Background()

	_, token := seedVotedToken(t, s, 150, "9")

	creator, err := s.ResolveOrCreateWallet(ctx, testAddress(151))
	require.NoError(t, err)
	latecomer, err := s.ResolveOrCreateWallet(ctx, testAddress(152))
	require.NoError(t, err)

	set, err := s.SetTokenCreatorIfAbsent(ctx, token.ID, creator.ID)
	require.NoError(t, err)
	assert.True(t, set)

	// A second attribution attempt changes nothing
	set, err = s.SetTokenCreatorIfAbsent(ctx, token.ID, latecomer.ID)
	require.NoError(t, err)
	assert.False(t, set)

	refreshed, err := s.GetOrCreateToken(ctx, token.ContractID, "9")
	require.NoError(t, err)
	require.NotNil(t, refreshed.CreatorID)
	assert.Equal(t, creator.ID, *refreshed.CreatorID)
}

// =============================================================================
// Ledger
// =============================================================================

func testRecordVote(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("first like appends", func(t *testing.T) {
		voter, err := s.ResolveOrCreateWallet(ctx, testAddress(160))
		require.NoError(t, err)
		_, token := seedVotedToken(t, s, 161, "1")

		appended, err := s.RecordVote(ctx, *voter.ProfileID, token.ID, 1)
		require.NoError(t, err)
		assert.True(t, appended)

		votes, err := s.ListVotes(ctx, *voter.ProfileID, token.ID)
		require.NoError(t, err)
		require.Len(t, votes, 1)
		assert.Equal(t, 1, votes[0].Value)
		assert.False(t, votes[0].Added.IsZero())
	})

	t.Run("duplicate consecutive like is absorbed", func(t *testing.T) {
		voter, err := s.ResolveOrCreateWallet(ctx, testAddress(162))
		require.NoError(t, err)
		_, token := seedVotedToken(t, s, 163, "1")

		appended, err := s.RecordVote(ctx, *voter.ProfileID, token.ID, 1)
		require.NoError(t, err)
		assert.True(t, appended)

		appended, err = s.RecordVote(ctx, *voter.ProfileID, token.ID, 1)
		require.NoError(t, err)
		assert.False(t, appended)

		votes, err := s.ListVotes(ctx, *voter.ProfileID, token.ID)
		require.NoError(t, err)
		assert.Len(t, votes, 1)
	})

	t.Run("alternating like and unlike all append", func(t *testing.T) {
		voter, err := s.ResolveOrCreateWallet(ctx, testAddress(164))
		require.NoError(t, err)
		_, token := seedVotedToken(t, s, 165, "1")

		for i, value := range []int{1, -1, 1} {
			appended, err := s.RecordVote(ctx, *voter.ProfileID, token.ID, value)
			require.NoError(t, err)
			assert.True(t, appended, "submission %d", i)
			time.Sleep(2 * time.Millisecond)
		}

		votes, err := s.ListVotes(ctx, *voter.ProfileID, token.ID)
		require.NoError(t, err)
		require.Len(t, votes, 3)
		assert.Equal(t, 1, votes[0].Value)
		assert.Equal(t, -1, votes[1].Value)
		assert.Equal(t, 1, votes[2].Value)
	})

	t.Run("dedup is scoped per profile and token", func(t *testing.T) {
		voterA, err := s.ResolveOrCreateWallet(ctx, testAddress(166))
		require.NoError(t, err)
		voterB, err := s.ResolveOrCreateWallet(ctx, testAddress(167))
		require.NoError(t, err)
		_, token := seedVotedToken(t, s, 168, "1")
		_, other := seedVotedToken(t, s, 168, "2")

		appended, err := s.RecordVote(ctx, *voterA.ProfileID, token.ID, 1)
		require.NoError(t, err)
		assert.True(t, appended)

		// A different voter and a different token are unaffected by A's tail
		appended, err = s.RecordVote(ctx, *voterB.ProfileID, token.ID, 1)
		require.NoError(t, err)
		assert.True(t, appended)

		appended, err = s.RecordVote(ctx, *voterA.ProfileID, other.ID, 1)
		require.NoError(t, err)
		assert.True(t, appended)
	})
}

// =============================================================================
// Aggregation
// =============================================================================

func testLikedTokens(t *testing.T, s Store) {
	ctx := context.Background()

	voter, err := s.ResolveOrCreateWallet(ctx, testAddress(170))
	require.NoError(t, err)
	profileID := *voter.ProfileID

	contract, tokenA := seedVotedToken(t, s, 171, "1")
	_, tokenB := seedVotedToken(t, s, 171, "2")
	_, tokenC := seedVotedToken(t, s, 171, "3")

	// A: liked, then most recent activity last
	// B: liked then unliked, net zero
	// C: liked after A
	appended, err := s.RecordVote(ctx, profileID, tokenA.ID, 1)
	require.NoError(t, err)
	require.True(t, appended)
	time.Sleep(5 * time.Millisecond)

	appended, err = s.RecordVote(ctx, profileID, tokenC.ID, 1)
	require.NoError(t, err)
	require.True(t, appended)
	time.Sleep(5 * time.Millisecond)

	appended, err = s.RecordVote(ctx, profileID, tokenB.ID, 1)
	require.NoError(t, err)
	require.True(t, appended)
	appended, err = s.RecordVote(ctx, profileID, tokenB.ID, -1)
	require.NoError(t, err)
	require.True(t, appended)

	t.Run("net-zero tokens are excluded and order is most recent first", func(t *testing.T) {
		liked, err := s.LikedTokens(ctx, profileID, 10)
		require.NoError(t, err)
		require.Len(t, liked, 2)

		assert.Equal(t, "3", liked[0].TokenIdentifier)
		assert.Equal(t, "1", liked[1].TokenIdentifier)
		assert.Equal(t, contract.Address, liked[0].ContractAddress)
		assert.Equal(t, int64(1), liked[0].Likes)
		assert.True(t, liked[0].LastLiked.After(liked[1].LastLiked))
	})

	t.Run("limit caps the result", func(t *testing.T) {
		liked, err := s.LikedTokens(ctx, profileID, 1)
		require.NoError(t, err)
		require.Len(t, liked, 1)
		assert.Equal(t, "3", liked[0].TokenIdentifier)
	})

	t.Run("profile with no votes has no liked tokens", func(t *testing.T) {
		other, err := s.ResolveOrCreateWallet(ctx, testAddress(172))
		require.NoError(t, err)

		liked, err := s.LikedTokens(ctx, *other.ProfileID, 10)
		require.NoError(t, err)
		assert.Empty(t, liked)
	})
}

func testTokenLikeCount(t *testing.T, s Store) {
	ctx := context.Background()

	contract, token := seedVotedToken(t, s, 180, "1")

	t.Run("zero when no ledger rows exist", func(t *testing.T) {
		count, err := s.TokenLikeCount(ctx, contract.Address, "1")
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})

	t.Run("sums values across voters", func(t *testing.T) {
		voterA, err := s.ResolveOrCreateWallet(ctx, testAddress(181))
		require.NoError(t, err)
		voterB, err := s.ResolveOrCreateWallet(ctx, testAddress(182))
		require.NoError(t, err)

		_, err = s.RecordVote(ctx, *voterA.ProfileID, token.ID, 1)
		require.NoError(t, err)
		_, err = s.RecordVote(ctx, *voterB.ProfileID, token.ID, 1)
		require.NoError(t, err)

		count, err := s.TokenLikeCount(ctx, contract.Address, "1")
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)

		// B withdraws
		_, err = s.RecordVote(ctx, *voterB.ProfileID, token.ID, -1)
		require.NoError(t, err)

		count, err = s.TokenLikeCount(ctx, contract.Address, "1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("unknown token counts zero", func(t *testing.T) {
		count, err := s.TokenLikeCount(ctx, testAddress(183), "404")
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})
}

func testLikedTokenCount(t *testing.T, s Store) {
	ctx := context.Background()

	voter, err := s.ResolveOrCreateWallet(ctx, testAddress(200))
	require.NoError(t, err)
	profileID := *voter.ProfileID

	_, tokenA := seedVotedToken(t, s, 201, "1")
	_, tokenB := seedVotedToken(t, s, 201, "2")
	_, tokenC := seedVotedToken(t, s, 201, "3")

	t.Run("zero for a profile with no votes", func(t *testing.T) {
		count, err := s.LikedTokenCount(ctx, profileID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})

	_, err = s.RecordVote(ctx, profileID, tokenA.ID, 1)
	require.NoError(t, err)
	_, err = s.RecordVote(ctx, profileID, tokenB.ID, 1)
	require.NoError(t, err)
	_, err = s.RecordVote(ctx, profileID, tokenC.ID, 1)
	require.NoError(t, err)
	_, err = s.RecordVote(ctx, profileID, tokenC.ID, -1)
	require.NoError(t, err)

	t.Run("counts net-positive tokens regardless of the listing limit", func(t *testing.T) {
		liked, err := s.LikedTokens(ctx, profileID, 1)
		require.NoError(t, err)
		require.Len(t, liked, 1)

		count, err := s.LikedTokenCount(ctx, profileID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}

func testAddressCaseFolding(t *testing.T, s Store) {
	ctx := context.Background()

	mixedContract := "0xAbCdEf0000000000000000000000000000000210"
	mixedWallet := "0xFeDcBa0000000000000000000000000000000211"

	t.Run("contract spellings resolve to one row", func(t *testing.T) {
		first, err := s.GetOrCreateContract(ctx, mixedContract)
		require.NoError(t, err)
		second, err := s.GetOrCreateContract(ctx, strings.ToLower(mixedContract))
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, strings.ToLower(mixedContract), first.Address)
	})

	t.Run("wallet spellings resolve to one row", func(t *testing.T) {
		created, err := s.ResolveOrCreateWallet(ctx, mixedWallet)
		require.NoError(t, err)
		assert.Equal(t, strings.ToLower(mixedWallet), created.Address)

		found, err := s.GetWalletByAddress(ctx, strings.ToUpper(mixedWallet))
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, created.ID, found.ID)
	})

	t.Run("like counts aggregate across spellings", func(t *testing.T) {
		voter, err := s.ResolveOrCreateWallet(ctx, mixedWallet)
		require.NoError(t, err)

		contract, err := s.GetOrCreateContract(ctx, mixedContract)
		require.NoError(t, err)
		token, err := s.GetOrCreateToken(ctx, contract.ID, "7")
		require.NoError(t, err)

		appended, err := s.RecordVote(ctx, *voter.ProfileID, token.ID, 1)
		require.NoError(t, err)
		require.True(t, appended)

		count, err := s.TokenLikeCount(ctx, mixedContract, "7")
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		count, err = s.TokenLikeCount(ctx, strings.ToLower(mixedContract), "7")
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func testLeaderboard(t *testing.T, s Store) {
	ctx := context.Background()

	// Two creators; bob's token collects two likes, alice's token one like
	// and one withdrawn like elsewhere
	alice, err := s.ResolveOrCreateWallet(ctx, testAddress(190))
	require.NoError(t, err)
	require.NoError(t, s.UpdateProfileIfEmpty(ctx, *alice.ProfileID, strPtr("alice"), strPtr("https://img.example/alice.png")))

	bob, err := s.ResolveOrCreateWallet(ctx, testAddress(191))
	require.NoError(t, err)
	require.NoError(t, s.UpdateProfileIfEmpty(ctx, *bob.ProfileID, strPtr("bob"), nil))

	_, tokenAlice := seedVotedToken(t, s, 192, "1")
	_, tokenBobA := seedVotedToken(t, s, 192, "2")
	_, tokenBobB := seedVotedToken(t, s, 192, "3")
	_, orphan := seedVotedToken(t, s, 192, "4")

	set, err := s.SetTokenCreatorIfAbsent(ctx, tokenAlice.ID, alice.ID)
	require.NoError(t, err)
	require.True(t, set)
	set, err = s.SetTokenCreatorIfAbsent(ctx, tokenBobA.ID, bob.ID)
	require.NoError(t, err)
	require.True(t, set)
	set, err = s.SetTokenCreatorIfAbsent(ctx, tokenBobB.ID, bob.ID)
	require.NoError(t, err)
	require.True(t, set)

	voterA, err := s.ResolveOrCreateWallet(ctx, testAddress(193))
	require.NoError(t, err)
	voterB, err := s.ResolveOrCreateWallet(ctx, testAddress(194))
	require.NoError(t, err)

	// Bob: one like on each of his tokens
	_, err = s.RecordVote(ctx, *voterA.ProfileID, tokenBobA.ID, 1)
	require.NoError(t, err)
	_, err = s.RecordVote(ctx, *voterB.ProfileID, tokenBobB.ID, 1)
	require.NoError(t, err)

	// Alice: one like
	_, err = s.RecordVote(ctx, *voterA.ProfileID, tokenAlice.ID, 1)
	require.NoError(t, err)

	// Votes on a token with no creator never reach the leaderboard
	_, err = s.RecordVote(ctx, *voterA.ProfileID, orphan.ID, 1)
	require.NoError(t, err)

	t.Run("orders creators by aggregate likes", func(t *testing.T) {
		entries, err := s.Leaderboard(ctx, 10)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		require.NotNil(t, entries[0].Name)
		assert.Equal(t, "bob", *entries[0].Name)
		assert.Equal(t, int64(2), entries[0].Likes)
		assert.Equal(t, testAddress(191), entries[0].CreatorAddress)

		require.NotNil(t, entries[1].Name)
		assert.Equal(t, "alice", *entries[1].Name)
		assert.Equal(t, int64(1), entries[1].Likes)
		require.NotNil(t, entries[1].ImgURL)
		assert.Equal(t, "https://img.example/alice.png", *entries[1].ImgURL)
	})

	t.Run("creators at net zero drop off", func(t *testing.T) {
		// Alice's single like is withdrawn
		_, err := s.RecordVote(ctx, *voterA.ProfileID, tokenAlice.ID, -1)
		require.NoError(t, err)

		entries, err := s.Leaderboard(ctx, 10)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "bob", *entries[0].Name)
	})

	t.Run("limit caps the result", func(t *testing.T) {
		entries, err := s.Leaderboard(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}
