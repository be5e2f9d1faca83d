package marketplace_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artfolio/artfolio-api/internal/adapter"
	"github.com/artfolio/artfolio-api/internal/marketplace"
	"github.com/artfolio/artfolio-api/internal/mocks"
)

const apiURL = "https://market.example/api/v1"

func newTestClient(httpClient adapter.HTTPClient, apiKey string) marketplace.Client {
	return marketplace.NewClient(httpClient, nil, apiURL, apiKey, adapter.NewJSON())
}

func TestGetAsset(t *testing.T) {
	t.Run("maps the upstream payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockHTTP := mocks.NewMockHTTPClient(ctrl)
		client := newTestClient(mockHTTP, "secret")

		body := []byte(`{
			"token_id": "42",
			"name": "Sunset Study",
			"description": "oil on canvas",
			"image_thumbnail_url": "https://cdn.example/42_thumb.png",
			"permalink": "https://market.example/assets/42",
			"owner": {"address": "0xaaa", "username": "collector", "profile_img_url": null},
			"creator": {"address": "0xbbb", "username": null, "profile_img_url": null},
			"asset_contract": {"address": "0xccc"},
			"last_sale": {"total_price": "1500000000000000000"}
		}`)

		mockHTTP.EXPECT().GetBytes(gomock.Any(),
			apiURL+"/asset/0xabcdef/42/",
			map[string]string{"X-API-KEY": "secret"},
		).Return(body, nil)

		asset, err := client.GetAsset(context.Background(), "0xABCDEF", "42")
		require.NoError(t, err)

		assert.Equal(t, "0xccc", asset.ContractAddress)
		assert.Equal(t, "42", asset.TokenIdentifier)
		assert.Equal(t, "Sunset Study", asset.Name)
		require.NotNil(t, asset.Description)
		assert.Equal(t, "oil on canvas", *asset.Description)
		// Usernames win over raw addresses; a missing username falls back
		assert.Equal(t, "collector", asset.Owner)
		assert.Equal(t, "0xbbb", asset.Creator)
		assert.Equal(t, "1500000000000000000", asset.Price)
		assert.Equal(t, "https://cdn.example/42_thumb.png", asset.ThumbnailURL)
		assert.Equal(t, "https://market.example/assets/42", asset.SharableLink)
	})

	t.Run("sparse payload yields zero-valued fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockHTTP := mocks.NewMockHTTPClient(ctrl)
		client := newTestClient(mockHTTP, "")

		body := []byte(`{"token_id": "7", "asset_contract": {"address": "0xccc"}}`)
		// No API key configured means no headers
		mockHTTP.EXPECT().GetBytes(gomock.Any(), gomock.Any(), map[string]string{}).
			Return(body, nil)

		asset, err := client.GetAsset(context.Background(), "0xccc", "7")
		require.NoError(t, err)

		assert.Equal(t, "7", asset.TokenIdentifier)
		assert.Empty(t, asset.Name)
		assert.Nil(t, asset.Description)
		assert.Empty(t, asset.Price)
	})

	t.Run("upstream failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockHTTP := mocks.NewMockHTTPClient(ctrl)
		client := newTestClient(mockHTTP, "")

		mockHTTP.EXPECT().GetBytes(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("upstream down"))

		asset, err := client.GetAsset(context.Background(), "0xccc", "7")
		assert.Error(t, err)
		assert.Nil(t, asset)
	})
}

func TestListAssets(t *testing.T) {
	listing := []byte(`{"assets": [
		{"token_id": "1", "asset_contract": {"address": "0xccc"}},
		{"token_id": "2", "asset_contract": {"address": "0xccc"}}
	]}`)

	t.Run("encodes query filters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockHTTP := mocks.NewMockHTTPClient(ctrl)
		client := newTestClient(mockHTTP, "")

		mockHTTP.EXPECT().GetBytes(gomock.Any(),
			apiURL+"/assets?collection=cool-cats&limit=50&order_by=sale_price&order_direction=asc",
			gomock.Any(),
		).Return(listing, nil)

		assets, err := client.ListAssets(context.Background(), marketplace.AssetQuery{
			Collection:     "cool-cats",
			OrderBy:        "sale_price",
			OrderDirection: "asc",
			Limit:          50,
		})
		require.NoError(t, err)
		require.Len(t, assets, 2)
		assert.Equal(t, "1", assets[0].TokenIdentifier)
		assert.Equal(t, "2", assets[1].TokenIdentifier)
	})

	t.Run("fans out one call per owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockHTTP := mocks.NewMockHTTPClient(ctrl)
		client := newTestClient(mockHTTP, "")

		mockHTTP.EXPECT().GetBytes(gomock.Any(),
			apiURL+"/assets?owner=0xaaa",
			gomock.Any(),
		).Return([]byte(`{"assets": [{"token_id": "1", "asset_contract": {"address": "0xccc"}}]}`), nil)
		mockHTTP.EXPECT().GetBytes(gomock.Any(),
			apiURL+"/assets?owner=0xbbb",
			gomock.Any(),
		).Return([]byte(`{"assets": [{"token_id": "2", "asset_contract": {"address": "0xccc"}}]}`), nil)

		assets, err := client.ListAssets(context.Background(), marketplace.AssetQuery{
			Owners: []string{"0xAAA", "0xBBB"},
		})
		require.NoError(t, err)
		require.Len(t, assets, 2)
		assert.Equal(t, "1", assets[0].TokenIdentifier)
		assert.Equal(t, "2", assets[1].TokenIdentifier)
	})

	t.Run("empty listing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockHTTP := mocks.NewMockHTTPClient(ctrl)
		client := newTestClient(mockHTTP, "")

		mockHTTP.EXPECT().GetBytes(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]byte(`{"assets": []}`), nil)

		assets, err := client.ListAssets(context.Background(), marketplace.AssetQuery{})
		require.NoError(t, err)
		assert.Empty(t, assets)
	})
}
