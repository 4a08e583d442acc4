package jwt_test

import (
	"time"

	tokenIssuer "chainsentry/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		issued  time.Time
		info    tokenIssuer.TokenInfo
	)

	BeforeEach(func() {
		service = tokenIssuer.NewJWTService([]byte("test-secret"))
		issued = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		tokenIssuer.TimeNow = func() time.Time { return issued }
		DeferCleanup(func() {
			tokenIssuer.TimeNow = time.Now
		})
		info = tokenIssuer.TokenInfo{
			Subject:    "compliance-dashboard",
			Scope:      "read",
			Expiration: time.Hour,
		}
	})

	It("should validate a token it signed", func() {
		token, err := service.Issue(info)
		Expect(err).NotTo(HaveOccurred())

		claims, err := service.Validate(token)
		Expect(err).NotTo(HaveOccurred())
		Expect(claims["sub"]).To(Equal("compliance-dashboard"))
		Expect(claims["scope"]).To(Equal("read"))
	})

	It("should reject an expired token", func() {
		token, err := service.Issue(info)
		Expect(err).NotTo(HaveOccurred())

		tokenIssuer.TimeNow = func() time.Time { return issued.Add(2 * time.Hour) }

		_, err = service.Validate(token)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
	})

	It("should reject a token signed with another secret", func() {
		token, err := tokenIssuer.NewJWTService([]byte("other")).Issue(info)
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Validate(token)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("should reject tokens using a non-HMAC algorithm", func() {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "x"}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Validate(unsigned)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})
})
