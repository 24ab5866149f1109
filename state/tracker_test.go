package state_test

import (
	"testing"
	"time"

	"github.com/dymensionxyz/gerr-cosmos/gerrc"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/stationlabs/blobgate/state"
	"github.com/stationlabs/blobgate/store"
	"github.com/stationlabs/blobgate/types"
)

func newTracker(t *testing.T) *state.Tracker {
	t.Helper()
	s := store.NewInMemoryStore()
	t.Cleanup(func() { _ = s.Close() })
	return state.NewTracker(s, log.NewNopLogger())
}

func TestBindIsIdempotent(t *testing.T) {
	require := require.New(t)
	tracker := newTracker(t)

	st, err := tracker.Bind("celestia1abc")
	require.NoError(err)
	require.Equal("celestia1abc", st.Address)
	require.False(st.IsDusted)

	_, err = tracker.MutateAddress("celestia1abc", func(st *types.AddressState) {
		st.IsDusted = true
		st.DustTxHash = "H1"
	})
	require.NoError(err)

	// binding again must not reset the record
	st, err = tracker.Bind("celestia1abc")
	require.NoError(err)
	require.True(st.IsDusted)
	require.Equal("H1", st.DustTxHash)
}

func TestLifecycleTransitions(t *testing.T) {
	require := require.New(t)
	tracker := newTracker(t)

	_, err := tracker.GetAddress("celestia1abc")
	require.ErrorIs(err, gerrc.ErrNotFound)

	_, err = tracker.Bind("celestia1abc")
	require.NoError(err)

	st, err := tracker.MutateAddress("celestia1abc", func(st *types.AddressState) {
		st.IsDusted = true
	})
	require.NoError(err)
	require.True(st.IsDusted)

	st, err = tracker.MutateAddress("celestia1abc", func(st *types.AddressState) {
		st.HasFeeGrant = true
		st.FeeAllowanceRemaining = "1000000"
	})
	require.NoError(err)
	require.True(st.IsDusted)
	require.True(st.HasFeeGrant)

	st, err = tracker.Revoke("celestia1abc")
	require.NoError(err)
	require.True(st.Revoked)
	// earlier flags survive revocation
	require.True(st.HasFeeGrant)
}

func TestMutateMissingAddress(t *testing.T) {
	tracker := newTracker(t)
	_, err := tracker.MutateAddress("celestia1ghost", func(st *types.AddressState) {})
	require.ErrorIs(t, err, gerrc.ErrNotFound)
}

func TestAdminUpsertAndTotals(t *testing.T) {
	require := require.New(t)
	tracker := newTracker(t)

	d, err := tracker.UpsertAdmin("celestia1admin", func(d *types.AdminDelegation) {
		d.AuthzGranted = true
		d.Confirmed = true
	})
	require.NoError(err)
	require.True(d.AuthzGranted)
	require.Zero(d.GrantsIssued)

	d, err = tracker.UpsertAdmin("celestia1admin", func(d *types.AdminDelegation) {
		d.GrantsIssued++
		d.TotalGrantedUtia += 250000
	})
	require.NoError(err)
	require.EqualValues(1, d.GrantsIssued)
	require.EqualValues(250000, d.TotalGrantedUtia)
	require.True(d.AuthzGranted, "merge must preserve earlier fields")
}

func TestIssueLifecycle(t *testing.T) {
	require := require.New(t)
	tracker := newTracker(t)

	issue := types.FeegrantIssue{
		ID:         uuid.NewString(),
		Admin:      "celestia1admin",
		Recipient:  "celestia1user",
		AmountUtia: 100000,
		Status:     types.FeegrantIssuePending,
		CreatedAt:  time.Now().UTC(),
	}
	require.NoError(tracker.CreateIssue(issue))

	got, err := tracker.MutateIssue(issue.ID, func(i *types.FeegrantIssue) {
		i.Status = types.FeegrantIssueFailed
		i.Error = "out of gas"
	})
	require.NoError(err)
	require.Equal(types.FeegrantIssueFailed, got.Status)
	require.Equal("out of gas", got.Error)
}

func TestPurgeExpired(t *testing.T) {
	require := require.New(t)
	tracker := newTracker(t)

	now := time.Now().UTC()
	fresh := types.PendingBlob{ID: "fresh", Address: "a", ExpiresAt: now.Add(time.Hour), CreatedAt: now}
	stale := types.PendingBlob{ID: "stale", Address: "a", ExpiresAt: now.Add(-time.Hour), CreatedAt: now}
	require.NoError(tracker.CreatePending(fresh))
	require.NoError(tracker.CreatePending(stale))

	purged, err := tracker.PurgeExpired(now)
	require.NoError(err)
	assert.Equal(t, 1, purged)

	purged, err = tracker.PurgeExpired(now)
	require.NoError(err)
	assert.Equal(t, 0, purged)

	require.NoError(tracker.DeletePending("fresh"))
}
