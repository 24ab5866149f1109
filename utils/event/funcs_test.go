package uevent_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/pubsub"

	uevent "github.com/stationlabs/blobgate/utils/event"
)

// A caller hanging up mid-request cancels the context it handed to the
// workflow; publishing the resulting event must not take the process down.
func TestMustPublishCanceledContext(t *testing.T) {
	server := pubsub.NewServer()
	require.NoError(t, server.Start())
	t.Cleanup(func() { _ = server.Stop() })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NotPanics(t, func() {
		uevent.MustPublish(ctx, server, "data", map[string][]string{"k": {"v"}})
	})
}
