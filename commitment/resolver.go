package commitment

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dymensionxyz/gerr-cosmos/gerrc"
)

// Resolver computes the share commitment for a (namespace, blob) pair.
// Commitment correctness is security critical: it is cryptographically bound
// to the blob content, so it must come from the sidecar that implements the
// actual share-splitting algorithm. There is no local fallback.
type Resolver interface {
	Resolve(ctx context.Context, namespaceHex string, blob []byte) ([]byte, error)
}

const defaultTimeout = 30 * time.Second

type request struct {
	Namespace      string `json:"namespace"`
	BlobBase64     string `json:"blobBase64"`
	ShareVersion   uint32 `json:"shareVersion"`
	NamespaceIsHex bool   `json:"namespaceIsHex"`
}

type response struct {
	CommitmentBase64 string `json:"commitmentBase64"`
}

// Client is the HTTP client for the commitment sidecar.
type Client struct {
	commitURL  string
	httpClient *http.Client
}

var _ Resolver = &Client{}

// NewClient creates a new sidecar client. A zero timeout falls back to the
// default.
func NewClient(commitURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Client{
		commitURL:  commitURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Resolve posts the blob to the sidecar and returns the decoded commitment.
// Any non-2xx response is a hard failure for this submission.
func (c *Client) Resolve(ctx context.Context, namespaceHex string, blob []byte) ([]byte, error) {
	body, err := json.Marshal(request{
		Namespace:      namespaceHex,
		BlobBase64:     base64.StdEncoding.EncodeToString(blob),
		ShareVersion:   0,
		NamespaceIsHex: true,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal commitment request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.commitURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create commitment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("commitment service: %w: %w", gerrc.ErrUnavailable, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("commitment service: status %d: %s: %w", resp.StatusCode, string(respBody), gerrc.ErrUnavailable)
	}

	var result response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode commitment response: %w", err)
	}

	commitment, err := base64.StdEncoding.DecodeString(result.CommitmentBase64)
	if err != nil {
		return nil, fmt.Errorf("decode commitment base64: %w", err)
	}
	if len(commitment) == 0 {
		return nil, fmt.Errorf("commitment service returned empty commitment: %w", gerrc.ErrFault)
	}
	return commitment, nil
}
