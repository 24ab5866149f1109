package msgbuilder_test

import (
	"testing"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/x/feegrant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stationlabs/blobgate/msgbuilder"
	"github.com/stationlabs/blobgate/namespace"
	blobtypes "github.com/stationlabs/blobgate/types/pb/celestia/blob"
)

func accAddress(t *testing.T, bz byte) sdk.AccAddress {
	t.Helper()
	addr := make([]byte, 20)
	for i := range addr {
		addr[i] = bz
	}
	return sdk.AccAddress(addr)
}

func TestNewGenericAuthzGrant(t *testing.T) {
	require := require.New(t)

	granter := accAddress(t, 1)
	grantee := accAddress(t, 2)
	expiration := time.Now().Add(24 * time.Hour).UTC()

	msg, err := msgbuilder.NewGenericAuthzGrant(granter, grantee, msgbuilder.URLMsgPayForBlobs, &expiration)
	require.NoError(err)
	require.Equal(granter.String(), msg.Granter)
	require.Equal(grantee.String(), msg.Grantee)

	auth, err := msg.GetAuthorization()
	require.NoError(err)
	require.Equal(msgbuilder.URLMsgPayForBlobs, auth.MsgTypeURL())

	_, err = msgbuilder.NewGenericAuthzGrant(granter, grantee, "", nil)
	require.Error(err)
}

func TestNewFeeAllowanceGrantBasic(t *testing.T) {
	require := require.New(t)

	limit := sdk.NewCoins(sdk.NewInt64Coin("utia", 1_000_000))
	msg, err := msgbuilder.NewFeeAllowanceGrant(accAddress(t, 1), accAddress(t, 2), limit, nil, nil)
	require.NoError(err)

	allowance, err := msg.GetFeeAllowanceI()
	require.NoError(err)
	basic, ok := allowance.(*feegrant.BasicAllowance)
	require.True(ok, "no allowed msgs means a bare BasicAllowance")
	require.Equal(limit, basic.SpendLimit)
	require.Nil(basic.Expiration)
}

func TestNewFeeAllowanceGrantRestricted(t *testing.T) {
	require := require.New(t)

	limit := sdk.NewCoins(sdk.NewInt64Coin("utia", 1_000_000))
	allowed := []string{msgbuilder.URLMsgSend, msgbuilder.URLMsgPayForBlobs}
	msg, err := msgbuilder.NewFeeAllowanceGrant(accAddress(t, 1), accAddress(t, 2), limit, nil, allowed)
	require.NoError(err)

	allowance, err := msg.GetFeeAllowanceI()
	require.NoError(err)
	restricted, ok := allowance.(*feegrant.AllowedMsgAllowance)
	require.True(ok)
	require.ElementsMatch(allowed, restricted.AllowedMessages)

	_, err = msgbuilder.NewFeeAllowanceGrant(accAddress(t, 1), accAddress(t, 2), sdk.NewCoins(), nil, nil)
	require.Error(err, "zero spend limit rejected")
}

func TestNewExecWrapsInnerSigner(t *testing.T) {
	require := require.New(t)

	user := accAddress(t, 3)
	backend := accAddress(t, 4)
	ns := namespace.FromName("exec-test")

	pfb, err := msgbuilder.NewPayForBlobs(user.String(), ns, []byte("data"), []byte{1, 2, 3})
	require.NoError(err)

	exec, err := msgbuilder.NewExec(backend, []sdk.Msg{pfb})
	require.NoError(err)
	require.Equal(backend.String(), exec.Grantee)
	require.Len(exec.Msgs, 1)
	require.Equal(blobtypes.TypeURL, exec.Msgs[0].TypeUrl)
	require.Equal([]sdk.AccAddress{backend}, exec.GetSigners())

	_, err = msgbuilder.NewExec(backend, nil)
	require.Error(err, "empty inner messages rejected")
}

func TestNewPayForBlobs(t *testing.T) {
	require := require.New(t)

	user := accAddress(t, 5)
	ns := namespace.FromName("pfb-test")
	commitment := []byte{0xaa, 0xbb}

	msg, err := msgbuilder.NewPayForBlobs(user.String(), ns, []byte("0123456789"), commitment)
	require.NoError(err)
	require.Equal(user.String(), msg.Signer)
	require.Equal([][]byte{ns.Bytes()}, msg.Namespaces)
	require.Equal([]uint32{10}, msg.BlobSizes)
	require.Equal([][]byte{commitment}, msg.ShareCommitments)
	require.Equal([]uint32{blobtypes.ShareVersionZero}, msg.ShareVersions)
	require.NoError(msg.ValidateBasic())

	_, err = msgbuilder.NewPayForBlobs(user.String(), ns, nil, commitment)
	assert.ErrorIs(t, err, blobtypes.ErrZeroBlobSize)

	_, err = msgbuilder.NewPayForBlobs(user.String(), ns, []byte("data"), nil)
	assert.ErrorIs(t, err, blobtypes.ErrEmptyCommitment)

	_, err = msgbuilder.NewPayForBlobs("not-bech32", ns, []byte("data"), commitment)
	assert.ErrorIs(t, err, blobtypes.ErrInvalidSigner)
}
