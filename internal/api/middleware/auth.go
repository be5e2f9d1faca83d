package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/artfolio/artfolio-api/internal/api/shared/constants"
	"github.com/artfolio/artfolio-api/internal/api/shared/dto"
	apierrors "github.com/artfolio/artfolio-api/internal/api/shared/errors"
	"github.com/artfolio/artfolio-api/internal/domain"
	"github.com/artfolio/artfolio-api/internal/logger"
)

// walletAddressKey is the gin context key holding the verified wallet address
const walletAddressKey = "wallet_address"

// TokenVerifier validates an identity token and resolves it to the wallet
// address it proves ownership of
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	APIKeys []string
}

// WalletAddress returns the verified wallet address stored by WalletAuth
func WalletAddress(c *gin.Context) (string, bool) {
	value, ok := c.Get(walletAddressKey)
	if !ok {
		return "", false
	}
	address, ok := value.(string)
	return address, ok
}

// WalletAuth returns a gin middleware requiring wallet authentication. The
// caller presents a bearer identity token plus the claimed wallet address in
// the X-Wallet-Address header; the token is verified against the identity
// service and must resolve to the claimed address.
func WalletAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c.GetHeader("Authorization"))
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		claimed := c.GetHeader(constants.WALLET_ADDRESS_HEADER)
		if !domain.ValidAddress(claimed) {
			abortUnauthorized(c, errors.New("missing or malformed wallet address header"))
			return
		}

		verified, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		if !strings.EqualFold(verified, claimed) {
			abortUnauthorized(c, errors.New("token does not match the claimed wallet address"))
			return
		}

		c.Set(walletAddressKey, domain.NormalizeAddress(verified))
		c.Next()
	}
}

// APIKeyAuth returns a gin middleware validating the X-API-KEY header. It is
// a no-op when no keys are configured, so open deployments stay open.
func APIKeyAuth(cfg AuthConfig) gin.HandlerFunc {
	validKeys := make(map[string]bool)
	for _, key := range cfg.APIKeys {
		if key != "" {
			validKeys[key] = true
		}
	}

	return func(c *gin.Context) {
		if len(validKeys) == 0 {
			c.Next()
			return
		}

		if !validKeys[c.GetHeader(constants.API_KEY_HEADER)] {
			abortUnauthorized(c, errors.New("missing or invalid API key"))
			return
		}

		c.Next()
	}
}

// bearerToken extracts the credential from a "Bearer <token>" header value
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errors.New("missing Authorization header")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", errors.New("invalid Authorization header format")
	}

	return parts[1], nil
}

func abortUnauthorized(c *gin.Context, err error) {
	logger.Warn("Authentication failed",
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("client_ip", c.ClientIP()),
	)
	apiErr := apierrors.NewAuthError("Authentication failed")
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorEnvelope{Error: apiErr})
}
