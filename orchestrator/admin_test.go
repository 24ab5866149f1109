package orchestrator_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dymensionxyz/gerr-cosmos/gerrc"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
	"github.com/tendermint/tendermint/libs/pubsub"

	"github.com/stationlabs/blobgate/chain"
	chainmocks "github.com/stationlabs/blobgate/mocks/github.com/stationlabs/blobgate/chain"
	orchestratormocks "github.com/stationlabs/blobgate/mocks/github.com/stationlabs/blobgate/orchestrator"
	"github.com/stationlabs/blobgate/msgbuilder"
	"github.com/stationlabs/blobgate/orchestrator"
	"github.com/stationlabs/blobgate/state"
	"github.com/stationlabs/blobgate/store"
	"github.com/stationlabs/blobgate/types"
)

type adminFixture struct {
	orch    *orchestrator.AdminOrchestrator
	chain   *orchestratormocks.MockChainClient
	grants  *chainmocks.MockGrantQuerier
	tracker *state.Tracker
	backend string
}

func setupAdmin(t *testing.T) *adminFixture {
	t.Helper()
	logger := log.TestingLogger()

	kv := store.NewInMemoryStore()
	t.Cleanup(func() { _ = kv.Close() })
	tracker := state.NewTracker(kv, logger)

	pubsubServer := pubsub.NewServer()
	require.NoError(t, pubsubServer.Start())
	t.Cleanup(func() { _ = pubsubServer.Stop() })

	chainClient := orchestratormocks.NewMockChainClient(t)
	grants := chainmocks.NewMockGrantQuerier(t)

	backend := testAddr(t, 0xbb)
	chainClient.EXPECT().Address().Return(backend).Maybe()

	cfg := orchestrator.DefaultConfig()
	cfg.AdminGrantRetryDelay = time.Millisecond

	orch, err := orchestrator.NewAdmin(cfg, logger, chainClient, grants, tracker, pubsubServer)
	require.NoError(t, err)

	return &adminFixture{
		orch:    orch,
		chain:   chainClient,
		grants:  grants,
		tracker: tracker,
		backend: backend,
	}
}

func TestRecordAuthzGrantConfirmed(t *testing.T) {
	require := require.New(t)
	f := setupAdmin(t)
	admin := testAddr(t, 20)

	f.grants.EXPECT().HasGrant(context.Background(), admin, f.backend, msgbuilder.URLMsgGrantAllowance).
		Return(true, nil).Once()

	record, err := f.orch.RecordAuthzGrant(context.Background(), admin, "TXADMIN", nil)
	require.NoError(err)
	require.True(record.AuthzGranted)
	require.True(record.Confirmed)
	require.Equal("TXADMIN", record.AuthzTxHash)
}

func TestRecordAuthzGrantOptimistic(t *testing.T) {
	require := require.New(t)
	f := setupAdmin(t)
	admin := testAddr(t, 21)

	// the index never catches up within the retry budget
	f.grants.EXPECT().HasGrant(context.Background(), admin, f.backend, msgbuilder.URLMsgGrantAllowance).
		Return(false, nil).Times(3)

	record, err := f.orch.RecordAuthzGrant(context.Background(), admin, "TXLAGGED", nil)
	require.NoError(err)
	require.True(record.AuthzGranted)
	require.False(record.Confirmed, "provisional record until the index catches up")
	require.Equal("TXLAGGED", record.AuthzTxHash)
}

func TestRecordAuthzGrantRefusedWithoutTxHash(t *testing.T) {
	require := require.New(t)
	f := setupAdmin(t)
	admin := testAddr(t, 22)

	f.grants.EXPECT().HasGrant(context.Background(), admin, f.backend, msgbuilder.URLMsgGrantAllowance).
		Return(false, nil).Times(3)

	_, err := f.orch.RecordAuthzGrant(context.Background(), admin, "", nil)
	require.Error(err)

	_, err = f.tracker.GetAdmin(admin)
	require.ErrorIs(err, gerrc.ErrNotFound, "nothing persisted without confirmation or a tx hash")
}

func TestExecuteAdminFeegrant(t *testing.T) {
	require := require.New(t)
	f := setupAdmin(t)
	admin := testAddr(t, 23)
	recipient := testAddr(t, 24)

	f.grants.EXPECT().HasGrant(context.Background(), admin, f.backend, msgbuilder.URLMsgGrantAllowance).
		Return(true, nil).Once()
	f.chain.EXPECT().SignAndBroadcast(context.Background(), mock.Anything).
		Return(&chain.TxResult{TxHash: "F1"}, nil).Once()

	issue, err := f.orch.ExecuteAdminFeegrant(context.Background(), admin, recipient, 500_000, nil)
	require.NoError(err)
	require.Equal(types.FeegrantIssueConfirmed, issue.Status)
	require.Equal("F1", issue.TxHash)
	require.Equal(admin, issue.Admin)
	require.Equal(recipient, issue.Recipient)

	record, err := f.tracker.GetAdmin(admin)
	require.NoError(err)
	require.EqualValues(1, record.GrantsIssued)
	require.EqualValues(500_000, record.TotalGrantedUtia)
}

func TestExecuteAdminFeegrantRefusesOnQueryFailure(t *testing.T) {
	require := require.New(t)
	f := setupAdmin(t)
	admin := testAddr(t, 25)

	f.grants.EXPECT().HasGrant(context.Background(), admin, f.backend, msgbuilder.URLMsgGrantAllowance).
		Return(false, errors.New("lcd unreachable")).Once()

	_, err := f.orch.ExecuteAdminFeegrant(context.Background(), admin, testAddr(t, 26), 100, nil)
	require.Error(err)
	require.Contains(err.Error(), "verify authz grant")
}

func TestExecuteAdminFeegrantNotDelegated(t *testing.T) {
	require := require.New(t)
	f := setupAdmin(t)
	admin := testAddr(t, 27)

	f.grants.EXPECT().HasGrant(context.Background(), admin, f.backend, msgbuilder.URLMsgGrantAllowance).
		Return(false, nil).Once()

	_, err := f.orch.ExecuteAdminFeegrant(context.Background(), admin, testAddr(t, 28), 100, nil)
	require.ErrorIs(err, orchestrator.ErrAdminNotDelegated)
}

func TestExecuteAdminFeegrantBroadcastFailure(t *testing.T) {
	require := require.New(t)
	f := setupAdmin(t)
	admin := testAddr(t, 29)
	recipient := testAddr(t, 30)

	f.grants.EXPECT().HasGrant(context.Background(), admin, f.backend, msgbuilder.URLMsgGrantAllowance).
		Return(true, nil).Once()
	f.chain.EXPECT().SignAndBroadcast(context.Background(), mock.Anything).
		Return(nil, &chain.TxError{Code: 4, RawLog: "unauthorized: authorization not found"}).Once()

	issue, err := f.orch.ExecuteAdminFeegrant(context.Background(), admin, recipient, 200_000, nil)
	require.Error(err)
	require.Contains(err.Error(), "authorization not found")
	require.Equal(types.FeegrantIssueFailed, issue.Status)
	require.NotEmpty(issue.Error)

	// totals move only on success; the record may not even exist yet
	record, recErr := f.tracker.GetAdmin(admin)
	if recErr == nil {
		require.EqualValues(0, record.GrantsIssued)
		require.EqualValues(0, record.TotalGrantedUtia)
	}
}
