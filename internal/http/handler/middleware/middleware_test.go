package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"time"

	"chainsentry/internal/http/handler/middleware"
	tokenIssuer "chainsentry/pkg/jwt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Middleware", func() {
	var (
		seenRequestID string
		next          http.Handler
		w             *httptest.ResponseRecorder
		logger        *zap.SugaredLogger
	)

	BeforeEach(func() {
		seenRequestID = ""
		logger = zap.NewNop().Sugar()
		w = httptest.NewRecorder()
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenRequestID = middleware.RequestIDFrom(r.Context())
			w.WriteHeader(http.StatusTeapot)
		})
	})

	Describe("RequestID", func() {
		It("should generate an id when the caller sends none", func() {
			h := middleware.NewRequestIDMiddleware().RequestID(next)
			h.ServeHTTP(w, httptest.NewRequest("GET", "/healthz", nil))

			Expect(seenRequestID).NotTo(BeEmpty())
			Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal(seenRequestID))
		})

		It("should keep the caller's id", func() {
			req := httptest.NewRequest("GET", "/healthz", nil)
			req.Header.Set(middleware.RequestIDHeader, "abc-123")

			h := middleware.NewRequestIDMiddleware().RequestID(next)
			h.ServeHTTP(w, req)

			Expect(seenRequestID).To(Equal("abc-123"))
		})
	})

	Describe("Logging", func() {
		It("should pass the response through", func() {
			h := middleware.NewLoggingMiddleware(logger).Logging(next)
			h.ServeHTTP(w, httptest.NewRequest("GET", "/healthz", nil))

			Expect(w.Code).To(Equal(http.StatusTeapot))
		})
	})

	Describe("Authenticate", func() {
		var (
			issuer *tokenIssuer.JWTService
			h      http.Handler
			req    *http.Request
		)

		BeforeEach(func() {
			issuer = tokenIssuer.NewJWTService([]byte("secret"))
			h = middleware.NewAuthMiddleware(logger, issuer).Authenticate(next)
			req = httptest.NewRequest("GET", "/v1/sanctions/0x1111111111111111111111111111111111111111", nil)
		})

		JustBeforeEach(func() {
			h.ServeHTTP(w, req)
		})

		When("the token is valid", func() {
			BeforeEach(func() {
				token, err := issuer.Issue(tokenIssuer.TokenInfo{Subject: "svc", Expiration: time.Hour})
				Expect(err).NotTo(HaveOccurred())
				req.Header.Set("Authorization", "Bearer "+token)
			})

			It("should call the next handler", func() {
				Expect(w.Code).To(Equal(http.StatusTeapot))
			})
		})

		When("the header is missing", func() {
			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).To(ContainSubstring("missing bearer token"))
			})
		})

		When("the token is forged", func() {
			BeforeEach(func() {
				token, err := tokenIssuer.NewJWTService([]byte("other")).Issue(tokenIssuer.TokenInfo{Subject: "svc", Expiration: time.Hour})
				Expect(err).NotTo(HaveOccurred())
				req.Header.Set("Authorization", "Bearer "+token)
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).To(ContainSubstring("invalid bearer token"))
			})
		})
	})
})
