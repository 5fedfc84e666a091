package middleware_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"tokenforge/internal/http/handler/middleware"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

func signBody(key, body string) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(body))
	return hex.EncodeToString(mac.Sum(nil))
}

var _ = Describe("SignatureMiddleware", func() {
	var (
		fakeLogger *zap.SugaredLogger
		signingKey string
		body       string
		signature  string

		w       *httptest.ResponseRecorder
		gotBody string
		called  bool
	)

	BeforeEach(func() {
		fakeLogger = zap.NewNop().Sugar()
		signingKey = "whsec-test"
		body = `{"network":"sepolia","logs":[]}`
		signature = signBody(signingKey, body)

		w = httptest.NewRecorder()
		called = false
		gotBody = ""
	})

	JustBeforeEach(func() {
		sm := middleware.NewSignatureMiddleware(fakeLogger, signingKey)
		protected := sm.Verify(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			raw, err := io.ReadAll(r.Body)
			Expect(err).NotTo(HaveOccurred())
			gotBody = string(raw)
		}))

		req := httptest.NewRequest("POST", "/blockchain/events", strings.NewReader(body))
		if signature != "" {
			req.Header.Set(middleware.SignatureHeader, signature)
		}
		protected.ServeHTTP(w, req)
	})

	When("the signature matches the body", func() {
		It("should pass the request through with the body intact", func() {
			Expect(called).To(BeTrue())
			Expect(gotBody).To(Equal(body))
		})
	})

	When("the signature does not match", func() {
		BeforeEach(func() {
			signature = signBody("other-key", body)
		})

		It("should reject with 401", func() {
			Expect(called).To(BeFalse())
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	When("the signature header is missing", func() {
		BeforeEach(func() {
			signature = ""
		})

		It("should reject with 401", func() {
			Expect(called).To(BeFalse())
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	When("no signing key is configured", func() {
		BeforeEach(func() {
			signingKey = ""
			signature = ""
		})

		It("should pass every request through", func() {
			Expect(called).To(BeTrue())
		})
	})
})

var _ = Describe("RequestIDMiddleware", func() {
	It("should tag the request context and the response header", func() {
		var ctxValue any

		rm := middleware.NewRequestIDMiddleware()
		tagged := rm.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctxValue = r.Context().Value(middleware.RequestIDKey)
		}))

		w := httptest.NewRecorder()
		tagged.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

		Expect(ctxValue).NotTo(BeNil())
		Expect(w.Header().Get("X-Request-Id")).To(Equal(ctxValue.(string)))
	})

	It("should hand out a fresh id per request", func() {
		rm := middleware.NewRequestIDMiddleware()
		tagged := rm.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		first := httptest.NewRecorder()
		second := httptest.NewRecorder()
		tagged.ServeHTTP(first, httptest.NewRequest("GET", "/health", nil))
		tagged.ServeHTTP(second, httptest.NewRequest("GET", "/health", nil))

		Expect(first.Header().Get("X-Request-Id")).NotTo(Equal(second.Header().Get("X-Request-Id")))
	})
})

var _ = Describe("LoggingMiddleware", func() {
	It("should preserve the wrapped handler's status code", func() {
		lm := middleware.NewLoggingMiddleware(zap.NewNop().Sugar())
		logged := lm.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))

		w := httptest.NewRecorder()
		logged.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

		Expect(w.Code).To(Equal(http.StatusTeapot))
	})
})
