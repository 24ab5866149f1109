package store_test

import (
	"testing"

	"github.com/dymensionxyz/gerr-cosmos/gerrc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stationlabs/blobgate/store"
)

func TestCRUD(t *testing.T) {
	require := require.New(t)

	s := store.NewInMemoryStore()
	defer func() { _ = s.Close() }()

	_, err := s.FindUnique("addresses", "celestia1abc")
	require.ErrorIs(err, gerrc.ErrNotFound)

	require.NoError(s.Create("addresses", "celestia1abc", []byte(`{"v":1}`)))
	err = s.Create("addresses", "celestia1abc", []byte(`{"v":2}`))
	require.ErrorIs(err, store.ErrAlreadyExists)

	doc, err := s.FindUnique("addresses", "celestia1abc")
	require.NoError(err)
	require.Equal([]byte(`{"v":1}`), doc)

	require.NoError(s.Update("addresses", "celestia1abc", []byte(`{"v":2}`)))
	doc, err = s.FindUnique("addresses", "celestia1abc")
	require.NoError(err)
	require.Equal([]byte(`{"v":2}`), doc)

	err = s.Update("addresses", "celestia1missing", []byte(`{}`))
	require.ErrorIs(err, gerrc.ErrNotFound)

	require.NoError(s.Delete("addresses", "celestia1abc"))
	_, err = s.FindUnique("addresses", "celestia1abc")
	require.ErrorIs(err, gerrc.ErrNotFound)

	// deleting a missing key is not an error
	require.NoError(s.Delete("addresses", "celestia1abc"))
}

func TestFindManyIsScopedToCollection(t *testing.T) {
	require := require.New(t)

	s := store.NewInMemoryStore()
	defer func() { _ = s.Close() }()

	require.NoError(s.Create("admins", "celestia1admin", []byte("a")))
	require.NoError(s.Create("addresses", "celestia1user1", []byte("u1")))
	require.NoError(s.Create("addresses", "celestia1user2", []byte("u2")))

	docs, err := s.FindMany("addresses")
	require.NoError(err)
	require.Len(docs, 2)
	assert.Equal(t, []byte("u1"), docs["celestia1user1"])
	assert.Equal(t, []byte("u2"), docs["celestia1user2"])

	docs, err = s.FindMany("pending_blobs")
	require.NoError(err)
	require.Empty(docs)
}
