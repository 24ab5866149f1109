// Package msgbuilder constructs every protocol message this gateway
// broadcasts. Each delegated operation has the same two-layer shape: build
// the real message as if the principal were sending it themselves, then wrap
// it in a MsgExec signed and fee-paid by the backend. Keeping the wrapping
// here avoids encoding mismatches between the inner signer and the outer
// executor.
package msgbuilder

import (
	"fmt"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/x/authz"
	"github.com/cosmos/cosmos-sdk/x/feegrant"
	"github.com/dymensionxyz/gerr-cosmos/gerrc"

	"github.com/stationlabs/blobgate/namespace"
	blobtypes "github.com/stationlabs/blobgate/types/pb/celestia/blob"
)

// Message type URLs the gateway grants against and executes.
const (
	URLMsgSend           = "/cosmos.bank.v1beta1.MsgSend"
	URLMsgPayForBlobs    = blobtypes.TypeURL
	URLMsgGrantAllowance = "/cosmos.feegrant.v1beta1.MsgGrantAllowance"
)

// NewGenericAuthzGrant builds a MsgGrant wrapping a GenericAuthorization for
// one message type. A nil expiration grants indefinitely.
func NewGenericAuthzGrant(granter, grantee sdk.AccAddress, msgTypeURL string, expiration *time.Time) (*authz.MsgGrant, error) {
	if msgTypeURL == "" {
		return nil, fmt.Errorf("authorized msg type url is empty: %w", gerrc.ErrInvalidArgument)
	}
	msg, err := authz.NewMsgGrant(granter, grantee, authz.NewGenericAuthorization(msgTypeURL), expiration)
	if err != nil {
		return nil, fmt.Errorf("new msg grant: %w", err)
	}
	return msg, nil
}

// NewFeeAllowanceGrant builds a MsgGrantAllowance carrying a BasicAllowance,
// restricted to allowedMsgTypeURLs when provided (AllowedMsgAllowance).
func NewFeeAllowanceGrant(granter, grantee sdk.AccAddress, spendLimit sdk.Coins, expiration *time.Time, allowedMsgTypeURLs []string) (*feegrant.MsgGrantAllowance, error) {
	if spendLimit.IsZero() {
		return nil, fmt.Errorf("spend limit is zero: %w", gerrc.ErrInvalidArgument)
	}

	var allowance feegrant.FeeAllowanceI = &feegrant.BasicAllowance{
		SpendLimit: spendLimit,
		Expiration: expiration,
	}
	if len(allowedMsgTypeURLs) > 0 {
		restricted, err := feegrant.NewAllowedMsgAllowance(allowance, allowedMsgTypeURLs)
		if err != nil {
			return nil, fmt.Errorf("new allowed msg allowance: %w", err)
		}
		allowance = restricted
	}

	msg, err := feegrant.NewMsgGrantAllowance(allowance, granter, grantee)
	if err != nil {
		return nil, fmt.Errorf("new msg grant allowance: %w", err)
	}
	return msg, nil
}

// NewExec wraps already-built inner messages in a MsgExec envelope: the inner
// messages execute with the inner signer's authority, the grantee broadcasts
// and pays fees.
func NewExec(grantee sdk.AccAddress, inner []sdk.Msg) (*authz.MsgExec, error) {
	if len(inner) == 0 {
		return nil, fmt.Errorf("no inner messages: %w", gerrc.ErrInvalidArgument)
	}
	for i, msg := range inner {
		if err := msg.ValidateBasic(); err != nil {
			return nil, fmt.Errorf("inner message %d: %w", i, err)
		}
	}
	exec := authz.NewMsgExec(grantee, inner)
	return &exec, nil
}

// NewPayForBlobs builds the single-blob MsgPayForBlobs. The namespace must
// already be validated before this is called; the blob-level invariants are
// re-checked by ValidateBasic.
func NewPayForBlobs(signer string, ns namespace.Namespace, blob []byte, commitment []byte) (*blobtypes.MsgPayForBlobs, error) {
	msg := &blobtypes.MsgPayForBlobs{
		Signer:           signer,
		Namespaces:       [][]byte{ns.Bytes()},
		BlobSizes:        []uint32{uint32(len(blob))},
		ShareCommitments: [][]byte{commitment},
		ShareVersions:    []uint32{blobtypes.ShareVersionZero},
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	return msg, nil
}
