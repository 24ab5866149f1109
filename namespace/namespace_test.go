package namespace_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stationlabs/blobgate/namespace"
)

func TestFromNameDeterministic(t *testing.T) {
	names := []string{"", "a", "my-app", "MY-APP", "\x00weird\xffname", strings.Repeat("x", 1024)}
	for _, name := range names {
		first := namespace.FromName(name)
		second := namespace.FromName(name)
		assert.Equal(t, first.Bytes(), second.Bytes(), "name %q", name)
		assert.True(t, namespace.ValidHex(first.Hex()), "name %q", name)
		assert.Len(t, first.Bytes(), namespace.Size)
	}

	// distinct names yield distinct namespaces
	assert.NotEqual(t, namespace.FromName("a").Hex(), namespace.FromName("b").Hex())
}

func TestRandom(t *testing.T) {
	require := require.New(t)

	first, err := namespace.Random()
	require.NoError(err)
	second, err := namespace.Random()
	require.NoError(err)

	require.True(namespace.ValidHex(first.Hex()))
	require.Len(first.Hex(), namespace.HexLength)
	require.NotEqual(first.Hex(), second.Hex())

	// version byte and padding zone are zero
	raw := first.Bytes()
	require.EqualValues(0, raw[0])
	for i := 1; i <= namespace.VersionZeroPrefixSize; i++ {
		require.EqualValues(0, raw[i], "byte %d", i)
	}
}

func TestHexRoundTrip(t *testing.T) {
	ns := namespace.FromName("round-trip")
	parsed, err := namespace.FromHex(ns.Hex())
	require.NoError(t, err)
	assert.Equal(t, ns.Bytes(), parsed.Bytes())
}

func TestValidHexRejections(t *testing.T) {
	valid := namespace.FromName("base").Hex()
	require.Len(t, valid, 58)

	cases := []struct {
		name string
		hex  string
	}{
		{"57 chars", valid[:57]},
		{"59 chars", valid + "0"},
		{"non-hex char", "zz" + valid[2:]},
		{"nonzero version byte", "01" + valid[2:]},
		// byte 5 is inside the zero-padding zone (bytes 1-18)
		{"nonzero padding byte", valid[:10] + "ff" + valid[12:]},
		{"empty", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, namespace.ValidHex(tc.hex))
			_, err := namespace.FromHex(tc.hex)
			assert.Error(t, err)
		})
	}
}

func TestNewRejectsBadID(t *testing.T) {
	_, err := namespace.New(namespace.VersionZero, make([]byte, 10))
	assert.Error(t, err)

	id := make([]byte, namespace.IDSize)
	id[3] = 1 // inside the padding zone
	_, err = namespace.New(namespace.VersionZero, id)
	assert.Error(t, err)

	_, err = namespace.New(1, make([]byte, namespace.IDSize))
	assert.Error(t, err)
}
