package constants

// Query limits
const (
	// LEADERBOARD_LIMIT caps the leaderboard at the top creators
	LEADERBOARD_LIMIT = 10

	// DEFAULT_LIKED_TOKENS_LIMIT caps the liked-token list in a profile response
	DEFAULT_LIKED_TOKENS_LIMIT = 100

	// DEFAULT_LISTING_LIMIT caps upstream listing calls (owned items, collections)
	DEFAULT_LISTING_LIMIT = 50
)

// Collection ordering
const (
	DEFAULT_ORDER_BY        = "sale_date"
	DEFAULT_ORDER_DIRECTION = "desc"
)

// Request headers
const (
	// WALLET_ADDRESS_HEADER carries the wallet address the caller claims;
	// the auth middleware checks it against the verified token
	WALLET_ADDRESS_HEADER = "X-Wallet-Address"

	// API_KEY_HEADER carries the service-to-service API key
	API_KEY_HEADER = "X-API-KEY"

	// REQUEST_ID_HEADER carries the request correlation ID
	REQUEST_ID_HEADER = "X-Request-ID"
)
