// Package uevent helps to publish and subscribe to events.
package uevent

import (
	"context"
	"errors"

	"github.com/tendermint/tendermint/libs/pubsub"

	"github.com/stationlabs/blobgate/types"
)

// MustSubscribe subscribes to an event query and runs the callback for every
// delivered message. It panics if the subscription itself fails, and returns
// when the context is canceled.
func MustSubscribe(
	ctx context.Context,
	pubsubServer *pubsub.Server,
	clientID string,
	eventQuery pubsub.Query,
	callback func(event pubsub.Message),
	logger types.Logger,
	outCapacity ...int,
) {
	subscription, err := pubsubServer.Subscribe(ctx, clientID, eventQuery, outCapacity...)
	if err != nil {
		logger.Error("subscribe to events")
		panic(err)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case event := <-subscription.Out():
			callback(event)
		case <-subscription.Cancelled():
			logger.Info("Subscription canceled.", "clientID", clientID)
			return
		}
	}
}

// MustPublish publishes the event data with its attribute map, panicking on
// failure. Will not panic on context cancel or deadline exceeded; a caller
// disconnecting after its workflow finished is not a server fault.
func MustPublish(ctx context.Context, pubsubServer *pubsub.Server, eventData interface{}, events map[string][]string) {
	err := pubsubServer.PublishWithEvents(ctx, eventData, events)
	if err != nil && !errors.Is(err, context.Canceled) {
		panic(err)
	}
}
