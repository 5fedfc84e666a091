package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// SignatureHeader carries the hex HMAC-SHA256 of the request body, as sent
// by the event provider.
const SignatureHeader = "X-Alchemy-Signature"

type SignatureMiddleware struct {
	logs       *zap.SugaredLogger
	signingKey []byte
}

func NewSignatureMiddleware(logger *zap.SugaredLogger, signingKey string) *SignatureMiddleware {
	return &SignatureMiddleware{
		logs:       logger,
		signingKey: []byte(signingKey),
	}
}

// Verify rejects requests whose body does not match the signature header.
// With no signing key configured every request passes through.
func (m *SignatureMiddleware) Verify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(m.signingKey) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		body, err := io.ReadAll(r.Body)
		r.Body.Close()
		if err != nil {
			m.logs.Errorw("failed to read request body", "error", err)
			http.Error(w, "could not read request body", http.StatusBadRequest)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		mac := hmac.New(sha256.New, m.signingKey)
		mac.Write(body)
		expected := hex.EncodeToString(mac.Sum(nil))

		received := r.Header.Get(SignatureHeader)
		if !hmac.Equal([]byte(expected), []byte(received)) {
			m.logs.Errorw("webhook signature mismatch", "path", r.URL.Path)
			http.Error(w, "invalid signature", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
