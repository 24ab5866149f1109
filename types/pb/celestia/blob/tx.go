// Package blob carries a hand-maintained mirror of the celestia.blob.v1
// message surface this service broadcasts. Only the single message the
// gateway constructs is mirrored; field numbers match the upstream proto so
// the wire encoding is identical.
package blob

import (
	"github.com/gogo/protobuf/proto"
)

const (
	// TypeURL is the protobuf Any type URL of MsgPayForBlobs.
	TypeURL = "/celestia.blob.v1.MsgPayForBlobs"

	// MaxBlobSizeBytes is the largest blob the gateway accepts: 2 MiB.
	MaxBlobSizeBytes = 2 * 1024 * 1024

	// ShareVersionZero is the only share format version in use.
	ShareVersionZero = uint32(0)
)

// MsgPayForBlobs pays for inclusion of blobs in one or more namespaces.
type MsgPayForBlobs struct {
	// Signer is the bech32 address paying for the blobs. Under authz exec the
	// signer is the granter, not the broadcasting account.
	Signer string `protobuf:"bytes,1,opt,name=signer,proto3" json:"signer,omitempty"`
	// Namespaces is a list of 29-byte namespaces, one per blob.
	Namespaces [][]byte `protobuf:"bytes,2,rep,name=namespaces,proto3" json:"namespaces,omitempty"`
	BlobSizes  []uint32 `protobuf:"varint,3,rep,packed,name=blob_sizes,json=blobSizes,proto3" json:"blob_sizes,omitempty"`
	// ShareCommitments is a list of share commitments, one per blob.
	ShareCommitments [][]byte `protobuf:"bytes,4,rep,name=share_commitments,json=shareCommitments,proto3" json:"share_commitments,omitempty"`
	// ShareVersions are the versions of the share format used to encode each blob.
	ShareVersions []uint32 `protobuf:"varint,8,rep,packed,name=share_versions,json=shareVersions,proto3" json:"share_versions,omitempty"`
}

func (m *MsgPayForBlobs) Reset()         { *m = MsgPayForBlobs{} }
func (m *MsgPayForBlobs) String() string { return proto.CompactTextString(m) }
func (*MsgPayForBlobs) ProtoMessage()    {}

func init() {
	proto.RegisterType(&MsgPayForBlobs{}, "celestia.blob.v1.MsgPayForBlobs")
}
