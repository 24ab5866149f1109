package namespace

import (
	"bytes"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

const (
	// VersionZero is the only namespace version this service accepts.
	VersionZero = uint8(0)

	// IDSize is the size of a namespace ID in bytes.
	IDSize = 28

	// Size is the total size of a namespace in bytes (version byte + ID).
	Size = IDSize + 1

	// VersionZeroPrefixSize is the number of `0` bytes prefixed to the ID
	// in a version 0 namespace.
	VersionZeroPrefixSize = 18

	// VersionZeroIDSize is the number of bytes available for a
	// user-specified ID in a version 0 namespace.
	VersionZeroIDSize = IDSize - VersionZeroPrefixSize

	// HexLength is the length of the hex wire format: 58 characters = 29 bytes.
	HexLength = 2 * Size
)

// versionZeroPrefix is the prefix of a namespace ID for version 0.
var versionZeroPrefix = bytes.Repeat([]byte{0}, VersionZeroPrefixSize)

// Namespace is a 29-byte Celestia namespace: 1 version byte (0), 18 zero
// padding bytes, and a 10-byte payload.
type Namespace struct {
	Version uint8
	ID      []byte
}

// New returns a new namespace with the provided version and id.
func New(version uint8, id []byte) (Namespace, error) {
	if err := validateVersion(version); err != nil {
		return Namespace{}, err
	}
	if err := validateID(version, id); err != nil {
		return Namespace{}, err
	}
	return Namespace{
		Version: version,
		ID:      id,
	}, nil
}

// Random returns a version 0 namespace with a cryptographically random payload.
func Random() (Namespace, error) {
	payload := make([]byte, VersionZeroIDSize)
	if _, err := rand.Read(payload); err != nil {
		return Namespace{}, fmt.Errorf("read random payload: %w", err)
	}
	return New(VersionZero, append(append([]byte{}, versionZeroPrefix...), payload...))
}

// FromName returns the version 0 namespace derived from a name: the payload is
// the first 10 bytes of SHA-256(name). Deterministic, same name same namespace.
func FromName(name string) Namespace {
	sum := sha256.Sum256([]byte(name))
	id := append(append([]byte{}, versionZeroPrefix...), sum[:VersionZeroIDSize]...)
	return Namespace{Version: VersionZero, ID: id}
}

// FromHex parses and validates the 58-character hex wire format.
func FromHex(s string) (Namespace, error) {
	if len(s) != HexLength {
		return Namespace{}, fmt.Errorf("namespace hex must be %d characters but was %d", HexLength, len(s))
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return Namespace{}, fmt.Errorf("decode namespace hex: %w", err)
	}
	return New(raw[0], raw[1:])
}

// ValidHex reports whether s is a well-formed version 0 namespace in the hex
// wire format. It must pass before a namespace from an external caller reaches
// message construction.
func ValidHex(s string) bool {
	_, err := FromHex(s)
	return err == nil
}

// Bytes returns this namespace as a byte slice.
func (n Namespace) Bytes() []byte {
	return append([]byte{n.Version}, n.ID...)
}

// Hex returns the 58-character lowercase hex wire format.
func (n Namespace) Hex() string {
	return hex.EncodeToString(n.Bytes())
}

// validateVersion returns an error if the version is not supported.
func validateVersion(version uint8) error {
	if version != VersionZero {
		return fmt.Errorf("unsupported namespace version %v", version)
	}
	return nil
}

// validateID returns an error if the provided id does not meet the
// requirements for the provided version.
func validateID(version uint8, id []byte) error {
	if len(id) != IDSize {
		return fmt.Errorf("unsupported namespace id length: must be %v bytes but was %v bytes", IDSize, len(id))
	}
	if version == VersionZero && !bytes.HasPrefix(id, versionZeroPrefix) {
		return fmt.Errorf("unsupported namespace id with version %v: must start with %v leading zeros", version, VersionZeroPrefixSize)
	}
	return nil
}
