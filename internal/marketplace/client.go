package marketplace

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/artfolio/artfolio-api/internal/adapter"
	"github.com/artfolio/artfolio-api/internal/ratelimit"
)

// Asset represents one listing returned by the upstream marketplace API,
// reshaped for the front-end
type Asset struct {
	ContractAddress string  `json:"address"`
	TokenIdentifier string  `json:"token"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	Creator         string  `json:"creator"`
	Owner           string  `json:"owner"`
	Price           string  `json:"price"`
	ThumbnailURL    string  `json:"thumbnail_url"`
	SharableLink    string  `json:"sharable_link"`
}

// AssetQuery holds the filters for the upstream listing endpoint
type AssetQuery struct {
	// Owners filters assets to the given owner addresses. The upstream API
	// accepts one owner per call; multiple owners fan out to multiple calls.
	Owners []string
	// Collection filters by collection slug
	Collection string
	// Contract filters by contract address
	Contract string
	// OrderBy is the upstream sort field (e.g. "sale_date", "sale_price")
	OrderBy string
	// OrderDirection is "asc" or "desc"
	OrderDirection string
	// Limit caps the number of returned assets per call
	Limit int
}

// accountPayload is the upstream representation of an account reference
type accountPayload struct {
	Address       string  `json:"address"`
	Username      *string `json:"username"`
	ProfileImgURL *string `json:"profile_img_url"`
}

// assetPayload is the upstream wire representation of one asset
type assetPayload struct {
	TokenID           string          `json:"token_id"`
	Name              *string         `json:"name"`
	Description       *string         `json:"description"`
	ImageThumbnailURL *string         `json:"image_thumbnail_url"`
	Permalink         *string         `json:"permalink"`
	Owner             *accountPayload `json:"owner"`
	Creator           *accountPayload `json:"creator"`
	AssetContract     struct {
		Address string `json:"address"`
	} `json:"asset_contract"`
	LastSale *struct {
		TotalPrice string `json:"total_price"`
	} `json:"last_sale"`
}

// assetListPayload is the upstream wire representation of a listing response
type assetListPayload struct {
	Assets []assetPayload `json:"assets"`
}

// Client defines the interface for upstream marketplace operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../mocks/marketplace_client.go -package=mocks -mock_names=Client=MockMarketplaceClient
type Client interface {
	// GetAsset fetches one asset by contract address and token identifier
	GetAsset(ctx context.Context, contractAddress, tokenIdentifier string) (*Asset, error)

	// ListAssets fetches assets matching the query filters
	ListAssets(ctx context.Context, query AssetQuery) ([]Asset, error)
}

// HTTPMarketplaceClient implements Client against the marketplace REST API
type HTTPMarketplaceClient struct {
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	apiURL         string
	apiKey         string
	json           adapter.JSON
}

// NewClient creates a new marketplace client
func NewClient(httpClient adapter.HTTPClient, rateLimitProxy ratelimit.Proxy, apiURL string, apiKey string, json adapter.JSON) Client {
	return &HTTPMarketplaceClient{
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		apiURL:         apiURL,
		apiKey:         apiKey,
		json:           json,
	}
}

// GetAsset fetches one asset by contract address and token identifier
func (c *HTTPMarketplaceClient) GetAsset(ctx context.Context, contractAddress, tokenIdentifier string) (*Asset, error) {
	reqURL := fmt.Sprintf("%s/asset/%s/%s/",
		c.apiURL,
		strings.ToLower(contractAddress),
		url.PathEscape(tokenIdentifier),
	)

	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, reqURL, c.headers())
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call marketplace API: %w", err)
	}

	var payload assetPayload
	if err := c.json.Unmarshal(respBody, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal marketplace response: %w", err)
	}

	asset := mapAsset(payload)
	return &asset, nil
}

// ListAssets fetches assets matching the query filters. Multiple owners fan
// out to one upstream call each; results keep upstream order per owner.
func (c *HTTPMarketplaceClient) ListAssets(ctx context.Context, query AssetQuery) ([]Asset, error) {
	owners := query.Owners
	if len(owners) == 0 {
		owners = []string{""}
	}

	var assets []Asset
	for _, owner := range owners {
		page, err := c.listAssetsForOwner(ctx, query, owner)
		if err != nil {
			return nil, err
		}
		assets = append(assets, page...)
	}
	return assets, nil
}

func (c *HTTPMarketplaceClient) listAssetsForOwner(ctx context.Context, query AssetQuery, owner string) ([]Asset, error) {
	params := url.Values{}
	if owner != "" {
		params.Set("owner", strings.ToLower(owner))
	}
	if query.Collection != "" {
		params.Set("collection", query.Collection)
	}
	if query.Contract != "" {
		params.Set("asset_contract_address", strings.ToLower(query.Contract))
	}
	if query.OrderBy != "" {
		params.Set("order_by", query.OrderBy)
	}
	if query.OrderDirection != "" {
		params.Set("order_direction", query.OrderDirection)
	}
	if query.Limit > 0 {
		params.Set("limit", fmt.Sprintf("%d", query.Limit))
	}

	reqURL := fmt.Sprintf("%s/assets?%s", c.apiURL, params.Encode())

	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, reqURL, c.headers())
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call marketplace API: %w", err)
	}

	var payload assetListPayload
	if err := c.json.Unmarshal(respBody, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal marketplace response: %w", err)
	}

	assets := make([]Asset, len(payload.Assets))
	for i, p := range payload.Assets {
		assets[i] = mapAsset(p)
	}
	return assets, nil
}

func (c *HTTPMarketplaceClient) headers() map[string]string {
	headers := map[string]string{}
	if c.apiKey != "" {
		headers["X-API-KEY"] = c.apiKey
	}
	return headers
}

// mapAsset reshapes the upstream payload into the front-end asset shape
func mapAsset(p assetPayload) Asset {
	asset := Asset{
		ContractAddress: p.AssetContract.Address,
		TokenIdentifier: p.TokenID,
		Description:     p.Description,
	}

	if p.Name != nil {
		asset.Name = *p.Name
	}
	if p.ImageThumbnailURL != nil {
		asset.ThumbnailURL = *p.ImageThumbnailURL
	}
	if p.Permalink != nil {
		asset.SharableLink = *p.Permalink
	}
	if p.Owner != nil {
		asset.Owner = accountDisplay(p.Owner)
	}
	if p.Creator != nil {
		asset.Creator = accountDisplay(p.Creator)
	}
	if p.LastSale != nil {
		asset.Price = p.LastSale.TotalPrice
	}

	return asset
}

// accountDisplay prefers the username, falling back to the raw address
func accountDisplay(a *accountPayload) string {
	if a.Username != nil && *a.Username != "" {
		return *a.Username
	}
	return a.Address
}
