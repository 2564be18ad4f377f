package stream

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"

	"github.com/iaamonline/member-portal/internal/metrics"
)

// TokenTTL is the fixed playback-token lifetime. The video platform rejects
// the token after this window; each playback session mints a fresh one.
const TokenTTL = time.Hour

// ErrNotConfigured means the signing key or key id is absent from the
// environment. Surfaced as a configuration error, never retried.
var ErrNotConfigured = errors.New("stream: signing key not configured")

// Issuer mints short-lived RS256 tokens the video platform accepts for
// manifest retrieval. Stateless and safe for concurrent use.
type Issuer struct {
	rawKey string
	keyID  string
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(rawKey, keyID string) *Issuer {
	return &Issuer{rawKey: rawKey, keyID: keyID, ttl: TokenTTL, now: time.Now}
}

// WithClock substitutes the time source, used by tests.
func (i *Issuer) WithClock(now func() time.Time) *Issuer {
	i.now = now
	return i
}

// Issue signs a token binding the video id, the key id and a fixed expiry.
func (i *Issuer) Issue(videoID string) (string, error) {
	if i.rawKey == "" || i.keyID == "" {
		return "", ErrNotConfigured
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM(normalizeKey(i.rawKey))
	if err != nil {
		return "", fmt.Errorf("stream: parse signing key: %w", err)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		"sub": videoID,
		"kid": i.keyID,
		"exp": i.now().Add(i.ttl).Unix(),
	})
	signed, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("stream: sign token: %w", err)
	}
	metrics.TokensIssued.Inc()
	return signed, nil
}

// normalizeKey accepts the two encodings the deployment environment may
// supply: a base64-wrapped PEM, or a PEM with literal "\n" escapes.
func normalizeKey(raw string) []byte {
	if decoded, err := base64.StdEncoding.DecodeString(raw); err == nil {
		return decoded
	}
	return []byte(strings.ReplaceAll(raw, `\n`, "\n"))
}
