package blob

import errorsmod "cosmossdk.io/errors"

const codespace = "blobgate/blob"

var (
	ErrInvalidSigner    = errorsmod.Register(codespace, 2, "invalid signer address")
	ErrNoNamespaces     = errorsmod.Register(codespace, 3, "no namespaces provided")
	ErrMismatchedCounts = errorsmod.Register(codespace, 4, "mismatched per-blob field counts")
	ErrInvalidNamespace = errorsmod.Register(codespace, 5, "invalid namespace")
	ErrZeroBlobSize     = errorsmod.Register(codespace, 6, "blob size cannot be zero")
	ErrBlobTooLarge     = errorsmod.Register(codespace, 7, "blob exceeds maximum size")
	ErrEmptyCommitment  = errorsmod.Register(codespace, 8, "share commitment cannot be empty")
)
