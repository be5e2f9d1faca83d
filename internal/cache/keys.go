package cache

import "fmt"

// Key builders for every cache entry the service uses. Wallet-scoped keys
// track the ledger exactly and are invalidated on vote recording; item,
// featured, and collection keys are immutable upstream snapshots.

// WalletLikesKey caches the like summary for a wallet
func WalletLikesKey(wallet string) string {
	return fmt.Sprintf("%s_likes", wallet)
}

// WalletOwnedKey caches the owned-item list for a wallet
func WalletOwnedKey(wallet string) string {
	return fmt.Sprintf("%s_owned", wallet)
}

// WalletLikedTokensKey caches the liked-token list for a wallet
func WalletLikedTokensKey(wallet string) string {
	return fmt.Sprintf("%s_liked_tokens", wallet)
}

// WalletInfoKey caches the display info for a wallet
func WalletInfoKey(wallet string) string {
	return fmt.Sprintf("%s_info", wallet)
}

// ItemKey caches the upstream detail for one (contract, token) pair
func ItemKey(contract, token string) string {
	return fmt.Sprintf("%s_%s", contract, token)
}

// FeaturedKey caches the featured-item listing
func FeaturedKey() string {
	return "featured"
}

// LeaderboardKey caches the top-creator leaderboard
func LeaderboardKey() string {
	return "leaderboard"
}

// CollectionKey caches an upstream collection listing for one ordering
func CollectionKey(collection, orderBy, orderDirection string) string {
	return fmt.Sprintf("%s_collection_%s_%s", collection, orderBy, orderDirection)
}

// VoteInvalidationKeys returns the keys that must be dropped after a
// successful vote recording for the given wallet. Item-detail and featured
// caches stay untouched.
func VoteInvalidationKeys(wallet string) []string {
	return []string{
		WalletLikesKey(wallet),
		WalletLikedTokensKey(wallet),
		LeaderboardKey(),
	}
}
