package commitment_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stationlabs/blobgate/commitment"
	"github.com/stationlabs/blobgate/namespace"
)

func TestResolve(t *testing.T) {
	require := require.New(t)

	ns := namespace.FromName("commitments")
	blob := []byte("some blob payload")
	want := []byte{0xde, 0xad, 0xbe, 0xef}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(http.MethodPost, r.Method)

		var req map[string]interface{}
		require.NoError(json.NewDecoder(r.Body).Decode(&req))
		require.Equal(ns.Hex(), req["namespace"])
		require.Equal(base64.StdEncoding.EncodeToString(blob), req["blobBase64"])
		require.Equal(float64(0), req["shareVersion"])
		require.Equal(true, req["namespaceIsHex"])

		_ = json.NewEncoder(w).Encode(map[string]string{
			"commitmentBase64": base64.StdEncoding.EncodeToString(want),
		})
	}))
	defer srv.Close()

	client := commitment.NewClient(srv.URL, time.Second)
	got, err := client.Resolve(context.Background(), ns.Hex(), blob)
	require.NoError(err)
	require.Equal(want, got)
}

func TestResolveNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "share splitting failed", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := commitment.NewClient(srv.URL, time.Second)
	_, err := client.Resolve(context.Background(), namespace.FromName("x").Hex(), []byte("blob"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
	assert.Contains(t, err.Error(), "share splitting failed")
}

func TestResolveEmptyCommitment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"commitmentBase64": ""})
	}))
	defer srv.Close()

	client := commitment.NewClient(srv.URL, time.Second)
	_, err := client.Resolve(context.Background(), namespace.FromName("x").Hex(), []byte("blob"))
	require.Error(t, err)
}

func TestResolveUnreachable(t *testing.T) {
	client := commitment.NewClient("http://127.0.0.1:1", 200*time.Millisecond)
	_, err := client.Resolve(context.Background(), namespace.FromName("x").Hex(), []byte("blob"))
	require.Error(t, err)
}
