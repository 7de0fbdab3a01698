package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidToken = errors.New("invalid auth token")

const defaultSessionTTL = 12 * time.Hour

// HMACStrategy signs "<subject>.<expiry>" with HMAC-SHA256.
type HMACStrategy struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewHMACStrategy builds HMACStrategy with provided secret and options.
func NewHMACStrategy(secret string, opts Options) *HMACStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &HMACStrategy{secret: []byte(secret), ttl: ttl, now: now}
}

// IssueToken generates a signed session token for subject.
func (s *HMACStrategy) IssueToken(subject string) (string, error) {
	if subject == "" {
		return "", ErrInvalidToken
	}
	expires := s.now().Add(s.ttl).Unix()
	payload := base64.RawURLEncoding.EncodeToString([]byte(subject)) + "." + strconv.FormatInt(expires, 10)
	return payload + "." + s.sign(payload), nil
}

// ParseToken validates token and returns its subject.
func (s *HMACStrategy) ParseToken(token string) (string, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return "", ErrInvalidToken
	}

	payload := parts[0] + "." + parts[1]
	if !hmac.Equal([]byte(s.sign(payload)), []byte(parts[2])) {
		return "", ErrInvalidToken
	}

	subject, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil || len(subject) == 0 {
		return "", ErrInvalidToken
	}

	expires, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return "", ErrInvalidToken
	}
	if !s.now().Before(time.Unix(expires, 0)) {
		return "", ErrInvalidToken
	}

	return string(subject), nil
}

func (s *HMACStrategy) Name() string {
	return "hmac"
}

func (s *HMACStrategy) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
