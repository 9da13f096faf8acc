// Package signature guards the interaction endpoint. Discord signs every
// request with the application's Ed25519 key over timestamp + raw body.
package signature

import (
	"bytes"
	"crypto/ed25519"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/gin-gonic/gin"
)

const (
	HeaderSignature = "X-Signature-Ed25519"
	HeaderTimestamp = "X-Signature-Timestamp"

	// BodyKey is the gin context key holding the verified raw body.
	BodyKey = "interaction.body"

	// MaxBodyBytes caps how much of an unverified request is read.
	MaxBodyBytes = 1 << 20
)

type Verifier struct {
	key ed25519.PublicKey
}

func NewVerifier(key ed25519.PublicKey) *Verifier {
	return &Verifier{key: key}
}

// Verify reports whether sig is a valid signature of timestamp+body.
// Blank headers, malformed hex and short keys all yield false.
func (v *Verifier) Verify(body []byte, sig, timestamp string) bool {
	if v == nil || len(v.key) != ed25519.PublicKeySize {
		return false
	}
	sig = strings.TrimSpace(sig)
	timestamp = strings.TrimSpace(timestamp)
	if sig == "" || timestamp == "" {
		return false
	}

	r := &http.Request{
		Header: make(http.Header),
		Body:   io.NopCloser(bytes.NewReader(body)),
	}
	r.Header.Set(HeaderSignature, sig)
	r.Header.Set(HeaderTimestamp, timestamp)

	return discordgo.VerifyInteraction(r, v.key)
}

// Middleware rejects unsigned or tampered requests with 401 before any
// handler sees the payload.
func (v *Verifier) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes))
		if err != nil {
			log.Printf("[WARN] Failed to read interaction body: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Bad request signature"})
			return
		}

		if !v.Verify(body, c.GetHeader(HeaderSignature), c.GetHeader(HeaderTimestamp)) {
			log.Printf("[WARN] Invalid request signature from %s", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Bad request signature"})
			return
		}

		c.Set(BodyKey, body)
		c.Next()
	}
}

// Body returns the raw body stored by Middleware.
func Body(c *gin.Context) ([]byte, bool) {
	v, ok := c.Get(BodyKey)
	if !ok {
		return nil, false
	}
	body, ok := v.([]byte)
	return body, ok
}
