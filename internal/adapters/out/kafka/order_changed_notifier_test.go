package kafka_test

import (
	"encoding/json"
	"testing"

	"dispatch/internal/adapters/out/kafka"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/Shopify/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T) *order.Order {
	t.Helper()

	sender, err := order.NewSender("Budi", "+62811", "Jl. Melati 5")
	require.NoError(t, err)
	pickup, err := kernel.NewPoint(-6.2001, 106.8001)
	require.NoError(t, err)
	dropoff, err := kernel.NewPoint(-6.2100, 106.8100)
	require.NoError(t, err)
	pricing, err := order.NewPricing(1000, 3000, 0, 4000, 4000)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), sender, pickup, dropoff, pricing, 0, 0)
	require.NoError(t, err)
	return o
}

func TestNotifyOrderChanged_PublishesLatestEvent(t *testing.T) {
	o := newOrder(t)
	courierID := kernel.NewUUID()
	require.NoError(t, o.Assign(courierID, true, order.NewAdminActor("admin-1")))

	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(payload []byte) error {
		var event map[string]any
		if err := json.Unmarshal(payload, &event); err != nil {
			return err
		}
		assert.Equal(t, o.ID().String(), event["order_id"])
		assert.Equal(t, order.StatusOffered.String(), event["status"])
		assert.Equal(t, courierID.String(), event["courier_id"])
		assert.Equal(t, "admin-1", event["actor_id"])
		return nil
	})

	notifier := kafka.NewOrderChangedNotifierWithProducer(producer, "order-changed")
	require.NoError(t, notifier.NotifyOrderChanged(t.Context(), o))
	require.NoError(t, producer.Close())
}

func TestNotifyOrderChanged_BrokerErrorIsReturned(t *testing.T) {
	o := newOrder(t)

	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(assert.AnError)

	notifier := kafka.NewOrderChangedNotifierWithProducer(producer, "order-changed")
	err := notifier.NotifyOrderChanged(t.Context(), o)

	require.ErrorIs(t, err, assert.AnError)
	require.NoError(t, producer.Close())
}
