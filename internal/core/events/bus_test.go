package events_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/rbac-console/internal/core/events"
	"github.com/frahmantamala/rbac-console/pkg/logger"
)

var _ = Describe("EventBus", func() {
	var bus *events.EventBus

	BeforeEach(func() {
		bus = events.NewEventBus(logger.Discard())
	})

	It("delivers to specific handlers before wildcard ones", func() {
		var order []string
		bus.Subscribe(events.Wildcard, func(context.Context, events.Event) error {
			order = append(order, "wildcard")
			return nil
		})
		bus.Subscribe("users.created", func(context.Context, events.Event) error {
			order = append(order, "specific")
			return nil
		})

		evt := events.NewStoreChangedEvent("users", events.ActionCreated, 1, 1)
		Expect(bus.PublishSync(context.Background(), evt)).To(Succeed())
		Expect(order).To(Equal([]string{"specific", "wildcard"}))
	})

	It("skips handlers of other event types", func() {
		called := false
		bus.Subscribe("roles.deleted", func(context.Context, events.Event) error {
			called = true
			return nil
		})

		evt := events.NewStoreChangedEvent("users", events.ActionDeleted, 1, 2)
		Expect(bus.PublishSync(context.Background(), evt)).To(Succeed())
		Expect(called).To(BeFalse())
	})

	It("stops at the first failing handler", func() {
		boom := errors.New("boom")
		second := false
		bus.Subscribe("users.updated", func(context.Context, events.Event) error { return boom })
		bus.Subscribe("users.updated", func(context.Context, events.Event) error {
			second = true
			return nil
		})

		err := bus.PublishSync(context.Background(), events.NewStoreChangedEvent("users", events.ActionUpdated, 3, 4))
		Expect(err).To(MatchError(boom))
		Expect(second).To(BeFalse())
	})

	It("carries the mutation in the event payload", func() {
		evt := events.NewStoreChangedEvent("permissions", events.ActionDeleted, 7, 12)

		Expect(evt.EventType()).To(Equal("permissions.deleted"))
		Expect(evt.EventID()).NotTo(BeEmpty())
		Expect(evt.Payload()).To(HaveKeyWithValue("entity_id", int64(7)))
		Expect(evt.Revision).To(Equal(uint64(12)))
	})
})
