package rpc_test

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
	"github.com/tendermint/tendermint/libs/pubsub"

	chainmocks "github.com/stationlabs/blobgate/mocks/github.com/stationlabs/blobgate/chain"
	commitmentmocks "github.com/stationlabs/blobgate/mocks/github.com/stationlabs/blobgate/commitment"
	orchestratormocks "github.com/stationlabs/blobgate/mocks/github.com/stationlabs/blobgate/orchestrator"
	"github.com/stationlabs/blobgate/namespace"
	"github.com/stationlabs/blobgate/orchestrator"
	"github.com/stationlabs/blobgate/rpc"
	"github.com/stationlabs/blobgate/state"
	"github.com/stationlabs/blobgate/store"
)

func setupServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := log.TestingLogger()

	kv := store.NewInMemoryStore()
	t.Cleanup(func() { _ = kv.Close() })
	tracker := state.NewTracker(kv, logger)

	pubsubServer := pubsub.NewServer()
	require.NoError(t, pubsubServer.Start())
	t.Cleanup(func() { _ = pubsubServer.Stop() })

	chainClient := orchestratormocks.NewMockChainClient(t)
	chainClient.EXPECT().Address().Return("celestia1backend").Maybe()
	resolver := commitmentmocks.NewMockResolver(t)
	grants := chainmocks.NewMockGrantQuerier(t)

	cfg := orchestrator.DefaultConfig()
	orch, err := orchestrator.New(cfg, logger, chainClient, resolver, grants, tracker, pubsubServer)
	require.NoError(t, err)
	admin, err := orchestrator.NewAdmin(cfg, logger, chainClient, grants, tracker, pubsubServer)
	require.NoError(t, err)

	srv := httptest.NewServer(rpc.NewServer(":0", logger, orch, admin, tracker).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func TestRandomNamespaceEndpoint(t *testing.T) {
	require := require.New(t)
	srv := setupServer(t)

	resp, err := http.Get(srv.URL + "/v1/namespace/random")
	require.NoError(err)
	defer resp.Body.Close() // nolint:errcheck
	require.Equal(http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(json.NewDecoder(resp.Body).Decode(&body))
	require.True(namespace.ValidHex(body["namespace"]))
}

func TestSubmitBlobPreconditionStatus(t *testing.T) {
	require := require.New(t)
	srv := setupServer(t)
	ns := namespace.FromName("rpc-test")

	payload := `{"address":"celestia1unbound","namespace":"` + ns.Hex() +
		`","blob_base64":"` + base64.StdEncoding.EncodeToString([]byte("data")) + `"}`
	resp, err := http.Post(srv.URL+"/v1/blobs", "application/json", strings.NewReader(payload))
	require.NoError(err)
	defer resp.Body.Close() // nolint:errcheck

	require.Equal(http.StatusPreconditionFailed, resp.StatusCode)
	var body map[string]string
	require.NoError(json.NewDecoder(resp.Body).Decode(&body))
	require.Contains(body["error"], "not bound")
}

func TestSubmitBlobBadNamespaceStatus(t *testing.T) {
	require := require.New(t)
	srv := setupServer(t)

	payload := `{"address":"celestia1x","namespace":"zz","blob_base64":"aGk="}`
	resp, err := http.Post(srv.URL+"/v1/blobs", "application/json", strings.NewReader(payload))
	require.NoError(err)
	defer resp.Body.Close() // nolint:errcheck

	require.Equal(http.StatusBadRequest, resp.StatusCode)
}

func TestAdminDelegationNotFound(t *testing.T) {
	srv := setupServer(t)

	resp, err := http.Get(srv.URL + "/v1/admin/delegation?admin=celestia1admin")
	require.NoError(t, err)
	defer resp.Body.Close() // nolint:errcheck
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMethodNotAllowed(t *testing.T) {
	srv := setupServer(t)

	resp, err := http.Get(srv.URL + "/v1/dust")
	require.NoError(t, err)
	defer resp.Body.Close() // nolint:errcheck
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
