package v1handler_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agenthub/internal/api/handler/v1handler"
	"agenthub/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const wallet = "addr_test1qpwallet"

// helper to generate an RSA key pair and return the private key and PEM-encoded public key.
func genRSAKeys(tb testing.TB) (*rsa.PrivateKey, string) {
	tb.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(tb, err, "failed to generate RSA key")
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(tb, err, "failed to marshal public key")
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})

	return priv, string(pubPEM)
}

func privPEM(priv *rsa.PrivateKey) string {
	return string(pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(priv)}))
}

func newSecHandlerForTest(t *testing.T, pubPEM string) *v1handler.SecHandler {
	t.Helper()
	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: pubPEM})
	require.NoError(t, err, "NewSecHandler failed")

	return sh
}

func signJWTRS256(tb testing.TB, priv *rsa.PrivateKey, sub string, admin bool, issuedAt, exp time.Time) string {
	tb.Helper()
	signed, err := v1handler.IssueToken(privPEM(priv), v1handler.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(exp),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
		Admin: admin,
	})
	require.NoError(tb, err, "failed to sign token")

	return signed
}

func TestHandleBearerAuth_ValidToken(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	now := time.Now()
	tkn := signJWTRS256(t, priv, wallet, true, now, now.Add(time.Hour))

	ctx, err := sh.HandleBearerAuth(context.Background(), tkn)
	require.NoError(t, err)

	caller := v1handler.CallerFromContext(ctx)
	require.Equal(t, wallet, caller.Wallet)
	require.True(t, caller.Admin)
}

func TestHandleBearerAuth_Rejected(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)
	privOther, _ := genRSAKeys(t)
	now := time.Now()

	hs := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   wallet,
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})
	hsSigned, err := hs.SignedString([]byte("secret"))
	require.NoError(t, err)

	for name, tkn := range map[string]string{
		"other key":       signJWTRS256(t, privOther, wallet, false, now, now.Add(time.Hour)),
		"expired":         signJWTRS256(t, priv, wallet, false, now.Add(-2*time.Hour), now.Add(-time.Hour)),
		"blank subject":   signJWTRS256(t, priv, "   ", false, now, now.Add(time.Hour)),
		"wrong algorithm": hsSigned,
		"garbage":         "not.a.token",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := sh.HandleBearerAuth(context.Background(), tkn)
			require.ErrorIs(t, err, serrors.ErrUnauthorized)
		})
	}
}

func TestHandleBearerAuth_NoKeyConfigured(t *testing.T) {
	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{})
	require.NoError(t, err)

	_, err = sh.HandleBearerAuth(context.Background(), "anything")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestNewSecHandler_InvalidKey(t *testing.T) {
	_, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: "not a pem"})
	require.Error(t, err)
}

func TestAuthenticateAndRequireAuth(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)
	now := time.Now()

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = v1handler.CallerFromContext(r.Context()).Wallet
		w.WriteHeader(http.StatusNoContent)
	})
	h := sh.Authenticate(v1handler.RequireAuth(next))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"code":"UNAUTHORIZED","message":"authentication required"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic abc")
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signJWTRS256(t, priv, wallet, false, now, now.Add(time.Hour)))
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, wallet, seen)
}

func TestIssueToken_RequiresSubject(t *testing.T) {
	priv, _ := genRSAKeys(t)

	_, err := v1handler.IssueToken(privPEM(priv), v1handler.Claims{})
	require.Error(t, err)
}
