package web

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionKey = "session_id"

// Sessions issues and verifies the signed session cookie. The cookie value is
// "<uuid>.<base64url hmac-sha256(uuid)>".
type Sessions struct {
	cookie string
	secret []byte
}

func NewSessions(cookie, secret string) *Sessions {
	return &Sessions{cookie: cookie, secret: []byte(secret)}
}

// Middleware attaches a session id to every request, issuing a new cookie when the
// incoming one is missing or fails verification.
func (s *Sessions) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := s.read(c)
		if !ok {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(s.cookie, s.encode(id), 0, "/", "", false, true)
		}
		c.Set(sessionKey, id)
		c.Next()
	}
}

func (s *Sessions) read(c *gin.Context) (string, bool) {
	raw, err := c.Cookie(s.cookie)
	if err != nil || raw == "" {
		return "", false
	}
	return s.decode(raw)
}

func (s *Sessions) encode(id string) string {
	return id + "." + base64.RawURLEncoding.EncodeToString(s.sign(id))
}

func (s *Sessions) decode(raw string) (string, bool) {
	id, sig, ok := strings.Cut(raw, ".")
	if !ok {
		return "", false
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}

	got, err := base64.RawURLEncoding.DecodeString(sig)
	if err != nil {
		return "", false
	}
	if !hmac.Equal(got, s.sign(id)) {
		return "", false
	}
	return id, true
}

func (s *Sessions) sign(id string) []byte {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(id))
	return mac.Sum(nil)
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
