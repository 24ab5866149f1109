package blob

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
)

var _ sdk.Msg = &MsgPayForBlobs{}

func (m *MsgPayForBlobs) GetSigners() []sdk.AccAddress {
	signer, err := sdk.AccAddressFromBech32(m.Signer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{signer}
}

func (m *MsgPayForBlobs) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Signer); err != nil {
		return errorsmod.Wrapf(ErrInvalidSigner, "invalid signer address (%s)", err)
	}

	if len(m.Namespaces) == 0 {
		return ErrNoNamespaces
	}
	if len(m.BlobSizes) != len(m.Namespaces) ||
		len(m.ShareCommitments) != len(m.Namespaces) ||
		len(m.ShareVersions) != len(m.Namespaces) {
		return errorsmod.Wrapf(ErrMismatchedCounts,
			"namespaces %d, sizes %d, commitments %d, versions %d",
			len(m.Namespaces), len(m.BlobSizes), len(m.ShareCommitments), len(m.ShareVersions))
	}

	for i, ns := range m.Namespaces {
		if len(ns) != NamespaceSize {
			return errorsmod.Wrapf(ErrInvalidNamespace, "namespace %d is %d bytes, must be %d", i, len(ns), NamespaceSize)
		}
	}
	for i, size := range m.BlobSizes {
		if size == 0 {
			return errorsmod.Wrapf(ErrZeroBlobSize, "blob %d", i)
		}
		if size > MaxBlobSizeBytes {
			return errorsmod.Wrapf(ErrBlobTooLarge, "blob %d is %d bytes, max %d", i, size, MaxBlobSizeBytes)
		}
	}
	for i, commitment := range m.ShareCommitments {
		if len(commitment) == 0 {
			return errorsmod.Wrapf(ErrEmptyCommitment, "blob %d", i)
		}
	}
	return nil
}

// NamespaceSize is the size of a namespace in bytes (version byte included).
const NamespaceSize = 29

// RegisterInterfaces registers MsgPayForBlobs so it can ride inside a
// protobuf Any (the authz MsgExec envelope).
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil), &MsgPayForBlobs{})
}
