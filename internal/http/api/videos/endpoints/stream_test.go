package endpoints

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iaamonline/member-portal/internal/http/api"
	"github.com/iaamonline/member-portal/internal/stream"
)

func signingKey(t *testing.T) string {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	block := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
	return base64.StdEncoding.EncodeToString(block)
}

func streamRouter(issuer *stream.Issuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api.MountGroup(r, api.GroupConfig{Prefix: "/api"}, StreamModule(issuer))
	return r
}

func TestMintToken_ReturnsSignedToken(t *testing.T) {
	r := streamRouter(stream.NewIssuer(signingKey(t), "key-1"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/stream-token", strings.NewReader(`{"videoId":"abc123"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["token"])
	assert.Equal(t, 3, strings.Count(body["token"], ".")+1, "expected a three-part JWT")
}

func TestMintToken_MissingVideoID(t *testing.T) {
	r := streamRouter(stream.NewIssuer(signingKey(t), "key-1"))

	for _, payload := range []string{`{}`, `{"videoId":""}`, `not json`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/stream-token", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, payload)
		assert.JSONEq(t, `{"error":"Video ID required"}`, w.Body.String(), payload)
	}
}

func TestMintToken_UnconfiguredSigner(t *testing.T) {
	r := streamRouter(stream.NewIssuer("", ""))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/stream-token", strings.NewReader(`{"videoId":"abc123"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"stream configuration missing"}`, w.Body.String())
}
