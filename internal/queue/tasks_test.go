package queue_test

import (
	"context"
	"encoding/json"
	"errors"

	"tokenforge/internal/queue"

	"github.com/hibiken/asynq"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Tasks", func() {
	var (
		fakeLogger *zap.SugaredLogger
		handler    *queue.EventsHandler
		ctx        context.Context
	)

	BeforeEach(func() {
		fakeLogger = zap.NewNop().Sugar()
		handler = queue.NewEventsHandler(fakeLogger)
		ctx = context.Background()
	})

	Describe("NewBlockchainEventsTask", func() {
		It("should carry the payload under the events type", func() {
			payload := queue.EventsPayload{
				Network: "sepolia",
				Logs:    []json.RawMessage{json.RawMessage(`{"address":"0x1"}`)},
			}

			task, err := queue.NewBlockchainEventsTask(payload)
			Expect(err).NotTo(HaveOccurred())
			Expect(task.Type()).To(Equal(queue.TypeBlockchainEvents))

			var decoded queue.EventsPayload
			Expect(json.Unmarshal(task.Payload(), &decoded)).To(Succeed())
			Expect(decoded).To(Equal(payload))
		})
	})

	Describe("HandleBlockchainEvents", func() {
		var (
			task *asynq.Task
			err  error
		)

		JustBeforeEach(func() {
			err = handler.HandleBlockchainEvents(ctx, task)
		})

		When("the payload decodes", func() {
			BeforeEach(func() {
				var taskErr error
				task, taskErr = queue.NewBlockchainEventsTask(queue.EventsPayload{
					Network: "sepolia",
					Logs: []json.RawMessage{
						json.RawMessage(`{"address":"0x1"}`),
						json.RawMessage(`{"address":"0x2"}`),
					},
				})
				Expect(taskErr).NotTo(HaveOccurred())
			})

			It("should process the batch", func() {
				Expect(err).NotTo(HaveOccurred())
			})
		})

		When("the payload is garbage", func() {
			BeforeEach(func() {
				task = asynq.NewTask(queue.TypeBlockchainEvents, []byte("not-json"))
			})

			It("should drop the task instead of retrying", func() {
				Expect(err).To(HaveOccurred())
				Expect(errors.Is(err, asynq.SkipRetry)).To(BeTrue())
			})
		})
	})
})
