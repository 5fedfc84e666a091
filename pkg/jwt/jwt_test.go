package jwt_test

import (
	"time"

	tokenIssuer "tokenforge/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		secret  []byte

		tokenInfo tokenIssuer.TokenInfo
	)

	BeforeEach(func() {
		secret = []byte("test-secret")
		service = tokenIssuer.NewJWTService(secret)

		tokenInfo = tokenIssuer.TokenInfo{
			UserName:   "alice",
			Subject:    "user-id-1",
			Expiration: 24,
		}
	})

	AfterEach(func() {
		tokenIssuer.TimeNow = time.Now
	})

	Describe("Generate and Sign", func() {
		It("should produce a verifiable HS512 token", func() {
			token := service.Generate(tokenInfo)
			Expect(token.Method).To(Equal(jwt.SigningMethodHS512))

			signed, err := service.Sign(token)
			Expect(err).NotTo(HaveOccurred())
			Expect(signed).NotTo(BeEmpty())

			claims, err := service.Validate(signed)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims["username"]).To(Equal("alice"))
			Expect(claims["sub"]).To(Equal("user-id-1"))
		})
	})

	Describe("Validate", func() {
		var signed string

		BeforeEach(func() {
			var err error
			signed, err = service.Sign(service.Generate(tokenInfo))
			Expect(err).NotTo(HaveOccurred())
		})

		When("the token was signed with a different secret", func() {
			BeforeEach(func() {
				other := tokenIssuer.NewJWTService([]byte("other-secret"))
				var err error
				signed, err = other.Sign(other.Generate(tokenInfo))
				Expect(err).NotTo(HaveOccurred())
			})

			It("should return token not valid error", func() {
				_, err := service.Validate(signed)
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the token is garbage", func() {
			It("should return token not valid error", func() {
				_, err := service.Validate("not.a.token")
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the token uses an unexpected signing method", func() {
			BeforeEach(func() {
				unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
					"sub": "user-id-1",
				})
				var err error
				signed, err = unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
				Expect(err).NotTo(HaveOccurred())
			})

			It("should return token not valid error", func() {
				_, err := service.Validate(signed)
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the token expiration has passed", func() {
			BeforeEach(func() {
				tokenInfo.Expiration = 1

				var err error
				signed, err = service.Sign(service.Generate(tokenInfo))
				Expect(err).NotTo(HaveOccurred())

				// the token is still within its signature-level validity,
				// only the service clock has moved past the exp claim
				tokenIssuer.TimeNow = func() time.Time {
					return time.Now().Add(2 * time.Hour)
				}
			})

			It("should return token expired error", func() {
				_, err := service.Validate(signed)
				Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
			})
		})
	})
})
