package types

import (
	"time"
)

// AddressState is the locally owned lifecycle record for one user address.
// It is mutated only by the orchestrator workflows; the flags track which
// on-chain steps have been confirmed (code 0) and persisted.
//
// The flags transition monotonically (dust -> feegrant -> authz) except
// Revoked, which can be set at any point and is terminal for submission.
type AddressState struct {
	// Address is the user's bech32 account address.
	Address string `json:"address"`

	IsDusted        bool `json:"is_dusted"`
	HasFeeGrant     bool `json:"has_fee_grant"`
	HasAuthzGranted bool `json:"has_authz_granted"`
	Revoked         bool `json:"revoked"`

	// FeeAllowanceRemaining is a cached hint only. The chain is authoritative;
	// the cache can diverge if the grant is revoked or exhausted out-of-band.
	FeeAllowanceRemaining string `json:"fee_allowance_remaining,omitempty"`

	DustTxHash     string `json:"dust_tx_hash,omitempty"`
	FeeGrantTxHash string `json:"fee_grant_tx_hash,omitempty"`
	AuthzTxHash    string `json:"authz_tx_hash,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AdminDelegation records a third party (admin) that delegated feegrant
// issuance to the backend via authz. One record per admin address.
type AdminDelegation struct {
	Address      string `json:"address"`
	AuthzGranted bool   `json:"authz_granted"`
	// Confirmed is false when the grant was recorded optimistically from a
	// client-supplied tx hash before the chain's grant index caught up.
	Confirmed   bool       `json:"confirmed"`
	AuthzTxHash string     `json:"authz_tx_hash,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`

	// Running totals, incremented only after a confirmed on-chain success.
	GrantsIssued     uint64 `json:"grants_issued"`
	TotalGrantedUtia int64  `json:"total_granted_utia"`

	UpdatedAt time.Time `json:"updated_at"`
}

// FeegrantIssueStatus is the lifecycle of one admin-initiated feegrant.
type FeegrantIssueStatus string

const (
	FeegrantIssuePending   FeegrantIssueStatus = "pending"
	FeegrantIssueConfirmed FeegrantIssueStatus = "confirmed"
	// FeegrantIssueFailed is terminal; each admin-initiated grant is a
	// one-shot operation whose failure is surfaced for manual retry.
	FeegrantIssueFailed FeegrantIssueStatus = "failed"
)

// FeegrantIssue is the audit record of one ExecuteAdminFeegrant attempt.
type FeegrantIssue struct {
	ID         string              `json:"id"`
	Admin      string              `json:"admin"`
	Recipient  string              `json:"recipient"`
	AmountUtia int64               `json:"amount_utia"`
	Expiration *time.Time          `json:"expiration,omitempty"`
	Status     FeegrantIssueStatus `json:"status"`
	TxHash     string              `json:"tx_hash,omitempty"`
	Error      string              `json:"error,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
}

// PendingBlob is the short-lived record of an in-flight blob submission.
// It exists from precondition checks until the broadcast settles, so an
// operator can audit submissions that died mid-pipeline. Expired records
// are garbage, removable via PurgeExpired.
type PendingBlob struct {
	ID           string    `json:"id"`
	Address      string    `json:"address"`
	NamespaceHex string    `json:"namespace_hex"`
	Size         int       `json:"size"`
	ExpiresAt    time.Time `json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
}
