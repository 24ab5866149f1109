package orchestrator

import (
	"fmt"

	"github.com/dymensionxyz/gerr-cosmos/gerrc"
)

// Workflow errors. Validation errors are detected before any network call;
// precondition errors come from local state and tell the caller which step to
// complete first.
var (
	ErrAddressNotBound   = fmt.Errorf("address not bound: %w", gerrc.ErrFailedPrecondition)
	ErrAddressRevoked    = fmt.Errorf("address revoked: %w", gerrc.ErrFailedPrecondition)
	ErrAuthzNotGranted   = fmt.Errorf("authz not granted: %w", gerrc.ErrFailedPrecondition)
	ErrFaucetDrained     = fmt.Errorf("backend balance below dust amount: %w", gerrc.ErrFailedPrecondition)
	ErrAdminNotDelegated = fmt.Errorf("admin has not delegated feegrant issuance: %w", gerrc.ErrFailedPrecondition)

	ErrInvalidNamespace = fmt.Errorf("invalid namespace: %w", gerrc.ErrInvalidArgument)
	ErrEmptyBlob        = fmt.Errorf("blob is empty: %w", gerrc.ErrInvalidArgument)
	ErrBlobTooLarge     = fmt.Errorf("blob exceeds max size: %w", gerrc.ErrOutOfRange)
	ErrBlobGasTooHigh   = fmt.Errorf("blob gas estimate exceeds configured gas limit: %w", gerrc.ErrOutOfRange)
	ErrInvalidSignedTx  = fmt.Errorf("signed tx is not valid base64: %w", gerrc.ErrInvalidArgument)
)
