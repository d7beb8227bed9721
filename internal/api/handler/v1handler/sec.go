package v1handler

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"agenthub/internal/config"
	"agenthub/internal/marketplace"
	"agenthub/pkg/logger"
	"agenthub/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// CtxKey is the type of context keys set by this package.
type CtxKey string

// CallerKey stores the authenticated marketplace.Caller.
const CallerKey CtxKey = "Caller"

// Claims are the bearer token claims. The subject is the caller's wallet address.
type Claims struct {
	jwt.RegisteredClaims

	Admin bool `json:"admin,omitempty"`
}

type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key verifying RS256 tokens.
	PublicKey string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

type SecHandler struct {
	publicKey *rsa.PublicKey
}

// NewSecHandler parses the verification key. Without a key every bearer token
// is rejected, leaving only anonymous access.
func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	if opts == nil || strings.TrimSpace(opts.PublicKey) == "" {
		return &SecHandler{}, nil
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse JWT public key: %w", err)
	}

	return &SecHandler{publicKey: key}, nil
}

// HandleBearerAuth verifies token and returns ctx carrying the caller.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	if s.publicKey == nil {
		return ctx, serrors.With(serrors.ErrUnauthorized, "authentication is not configured")
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.publicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	wallet := strings.TrimSpace(claims.Subject)
	if wallet == "" || strings.ContainsAny(wallet, " \t\n") {
		return ctx, serrors.With(serrors.ErrUnauthorized, "invalid token subject")
	}

	ctx = logger.WithFields(ctx, zap.String("wallet", wallet))

	return context.WithValue(ctx, CallerKey, marketplace.Caller{Wallet: wallet, Admin: claims.Admin}), nil
}

// Authenticate resolves the caller from an Authorization header when one is
// sent. Requests without the header continue anonymously.
func (s *SecHandler) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			next.ServeHTTP(w, r)

			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			writeAuthError(w, r, serrors.With(serrors.ErrUnauthorized, "expected a bearer token"))

			return
		}
		ctx, err := s.HandleBearerAuth(r.Context(), strings.TrimSpace(token))
		if err != nil {
			writeAuthError(w, r, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth rejects anonymous requests.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if CallerFromContext(r.Context()).Anonymous() {
			writeAuthError(w, r, serrors.With(serrors.ErrUnauthorized, "authentication required"))

			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeAuthError(w http.ResponseWriter, r *http.Request, err error) {
	logger.Debug(r.Context(), "rejected request", zap.Error(err))
	writeJSON(r.Context(), w, http.StatusUnauthorized, ErrorBody{
		Code:    serrors.ErrUnauthorized.Error(),
		Message: serrors.MessageOf(err),
	})
}

// CallerFromContext returns the authenticated caller, or the anonymous caller.
func CallerFromContext(ctx context.Context) marketplace.Caller {
	if caller, ok := ctx.Value(CallerKey).(marketplace.Caller); ok {
		return caller
	}

	return marketplace.Caller{}
}

// IssueToken signs an RS256 token for wallet. It backs the jwt command.
func IssueToken(privateKeyPEM string, claims Claims) (string, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return "", fmt.Errorf("could not parse JWT private key: %w", err)
	}
	if claims.Subject == "" {
		return "", errors.New("token subject is required")
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("could not sign token: %w", err)
	}

	return signed, nil
}
