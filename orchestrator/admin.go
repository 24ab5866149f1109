package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/dymensionxyz/gerr-cosmos/gerrc"
	"github.com/google/uuid"
	"github.com/tendermint/tendermint/libs/pubsub"

	"github.com/stationlabs/blobgate/chain"
	"github.com/stationlabs/blobgate/msgbuilder"
	"github.com/stationlabs/blobgate/state"
	"github.com/stationlabs/blobgate/types"
	uevent "github.com/stationlabs/blobgate/utils/event"
)

// AdminOrchestrator runs the admin-side delegation workflows. An admin is a
// separate principal that grants the backend authority over MsgGrantAllowance
// so the backend can issue feegrants from the admin's account.
type AdminOrchestrator struct {
	config  Config
	logger  types.Logger
	chain   ChainClient
	grants  chain.GrantQuerier
	tracker *state.Tracker
	pubsub  *pubsub.Server
}

// NewAdmin creates the admin orchestrator.
func NewAdmin(
	config Config,
	logger types.Logger,
	chainClient ChainClient,
	grants chain.GrantQuerier,
	tracker *state.Tracker,
	pubsubServer *pubsub.Server,
) (*AdminOrchestrator, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("admin orchestrator config: %w", err)
	}
	return &AdminOrchestrator{
		config:  config,
		logger:  logger,
		chain:   chainClient,
		grants:  grants,
		tracker: tracker,
		pubsub:  pubsubServer,
	}, nil
}

// RecordAuthzGrant records that an admin delegated feegrant issuance to the
// backend. The admin signed and broadcast the grant client-side; this polls
// the chain's grant index a bounded number of times to confirm it landed.
// If the index has not caught up but the caller supplied the grant's tx
// hash, the record is persisted provisionally with Confirmed=false.
func (a *AdminOrchestrator) RecordAuthzGrant(ctx context.Context, adminAddress, txHash string, expiresAt *time.Time) (types.AdminDelegation, error) {
	confirmErr := retry.Do(
		func() error {
			has, err := a.grants.HasGrant(ctx, adminAddress, a.chain.Address(), msgbuilder.URLMsgGrantAllowance)
			if err != nil {
				return err
			}
			if !has {
				return fmt.Errorf("authz grant not indexed yet: %w", gerrc.ErrNotFound)
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(a.config.AdminGrantRetryAttempts),
		retry.Delay(a.config.AdminGrantRetryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
	confirmed := confirmErr == nil
	if !confirmed {
		if txHash == "" {
			return types.AdminDelegation{}, fmt.Errorf("confirm authz grant for %s: %w", adminAddress, confirmErr)
		}
		a.logger.Info("Authz grant unconfirmed after retries, trusting supplied tx hash provisionally.",
			"admin", adminAddress, "tx_hash", txHash, "err", confirmErr)
	}

	record, err := a.tracker.UpsertAdmin(adminAddress, func(d *types.AdminDelegation) {
		d.AuthzGranted = true
		d.Confirmed = confirmed
		d.AuthzTxHash = txHash
		d.ExpiresAt = expiresAt
	})
	if err != nil {
		return types.AdminDelegation{}, err
	}

	uevent.MustPublish(ctx, a.pubsub, &EventDataAddress{Address: adminAddress, TxHash: txHash}, EventListAdminDelegation)
	a.logger.Info("Recorded admin delegation.", "admin", adminAddress, "confirmed", confirmed)
	return record, nil
}

// ExecuteAdminFeegrant issues a feegrant from the admin's account to the
// recipient, executed by the backend under the admin's authz grant. Unlike
// RecordAuthzGrant this is never optimistic: the on-chain grant must be
// verifiable right now, or the operation refuses to proceed. Failure is
// terminal for the issue record; the admin retries manually.
func (a *AdminOrchestrator) ExecuteAdminFeegrant(ctx context.Context, adminAddress, recipientAddress string, amountUtia int64, expiration *time.Time) (types.FeegrantIssue, error) {
	if amountUtia <= 0 {
		return types.FeegrantIssue{}, fmt.Errorf("amount must be positive: %w", gerrc.ErrInvalidArgument)
	}

	has, err := a.grants.HasGrant(ctx, adminAddress, a.chain.Address(), msgbuilder.URLMsgGrantAllowance)
	if err != nil {
		return types.FeegrantIssue{}, fmt.Errorf("verify authz grant for %s: %w", adminAddress, err)
	}
	if !has {
		return types.FeegrantIssue{}, fmt.Errorf("admin %s: %w", adminAddress, ErrAdminNotDelegated)
	}

	issue := types.FeegrantIssue{
		ID:         uuid.NewString(),
		Admin:      adminAddress,
		Recipient:  recipientAddress,
		AmountUtia: amountUtia,
		Expiration: expiration,
		Status:     types.FeegrantIssuePending,
		CreatedAt:  time.Now().UTC(),
	}
	if err := a.tracker.CreateIssue(issue); err != nil {
		return types.FeegrantIssue{}, fmt.Errorf("record feegrant issue: %w", err)
	}

	granter, err := sdk.AccAddressFromBech32(adminAddress)
	if err != nil {
		return a.failIssue(issue.ID, fmt.Errorf("admin address: %w: %w", err, gerrc.ErrInvalidArgument))
	}
	grantee, err := sdk.AccAddressFromBech32(recipientAddress)
	if err != nil {
		return a.failIssue(issue.ID, fmt.Errorf("recipient address: %w: %w", err, gerrc.ErrInvalidArgument))
	}
	backend, err := sdk.AccAddressFromBech32(a.chain.Address())
	if err != nil {
		return a.failIssue(issue.ID, fmt.Errorf("backend address: %w", err))
	}

	spendLimit := sdk.NewCoins(sdk.NewInt64Coin(a.config.Denom, amountUtia))
	msg, err := msgbuilder.NewFeeAllowanceGrant(granter, grantee, spendLimit, expiration, nil)
	if err != nil {
		return a.failIssue(issue.ID, err)
	}
	exec, err := msgbuilder.NewExec(backend, []sdk.Msg{msg})
	if err != nil {
		return a.failIssue(issue.ID, err)
	}

	result, err := a.chain.SignAndBroadcast(ctx, exec)
	if err != nil {
		chainBroadcastFailures.Inc()
		return a.failIssue(issue.ID, fmt.Errorf("broadcast admin feegrant: %w", err))
	}

	issue, err = a.tracker.MutateIssue(issue.ID, func(i *types.FeegrantIssue) {
		i.Status = types.FeegrantIssueConfirmed
		i.TxHash = result.TxHash
	})
	if err != nil {
		return types.FeegrantIssue{}, fmt.Errorf("feegrant broadcast %s but persist failed: %w", result.TxHash, err)
	}

	// totals move only after a confirmed on-chain success
	if _, err := a.tracker.UpsertAdmin(adminAddress, func(d *types.AdminDelegation) {
		d.GrantsIssued++
		d.TotalGrantedUtia += amountUtia
	}); err != nil {
		return issue, fmt.Errorf("update admin totals: %w", err)
	}

	adminFeegrantsIssuedTotal.Inc()
	uevent.MustPublish(ctx, a.pubsub, &EventDataFeegrantIssued{
		Admin:      adminAddress,
		Recipient:  recipientAddress,
		AmountUtia: amountUtia,
		TxHash:     result.TxHash,
	}, EventListFeegrantIssued)
	a.logger.Info("Executed admin feegrant.", "admin", adminAddress, "recipient", recipientAddress, "amount", amountUtia, "tx_hash", result.TxHash)
	return issue, nil
}

// failIssue moves the issue record to its terminal failed state and returns
// the original error alongside it.
func (a *AdminOrchestrator) failIssue(id string, cause error) (types.FeegrantIssue, error) {
	issue, err := a.tracker.MutateIssue(id, func(i *types.FeegrantIssue) {
		i.Status = types.FeegrantIssueFailed
		i.Error = cause.Error()
	})
	if err != nil {
		a.logger.Error("Mark feegrant issue failed.", "id", id, "err", err)
	}
	return issue, cause
}
