package faucet_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"tokenforge/internal/faucet"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Client", func() {
	var (
		server     *httptest.Server
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		statusCode   int
		gotPath      string
		gotBody      map[string]string
		gotMediaType string

		client *faucet.Client
		err    error
	)

	BeforeEach(func() {
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()
		statusCode = http.StatusOK
		gotBody = nil

		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotMediaType = r.Header.Get("Content-Type")
			Expect(json.NewDecoder(r.Body).Decode(&gotBody)).To(Succeed())
			w.WriteHeader(statusCode)
		}))

		client = faucet.NewClient(fakeLogger, server.URL)
	})

	AfterEach(func() {
		server.Close()
	})

	JustBeforeEach(func() {
		err = client.Request(ctx, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", "sepolia")
	})

	When("the faucet accepts the request", func() {
		It("should post the address to the network endpoint", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(gotPath).To(Equal("/sepolia"))
			Expect(gotMediaType).To(Equal("application/json"))
			Expect(gotBody).To(Equal(map[string]string{
				"address": "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
				"network": "sepolia",
			}))
		})
	})

	When("the faucet rejects the request", func() {
		BeforeEach(func() {
			statusCode = http.StatusForbidden
		})

		It("should return request rejected error", func() {
			Expect(err).To(MatchError(faucet.ErrRequestRejected))
			Expect(err.Error()).To(ContainSubstring("403"))
		})
	})

	When("the faucet is unreachable", func() {
		BeforeEach(func() {
			server.Close()
		})

		It("should return a transport error", func() {
			Expect(err).To(HaveOccurred())
			Expect(err).NotTo(MatchError(faucet.ErrRequestRejected))
		})
	})
})
