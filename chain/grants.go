package chain

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dymensionxyz/gerr-cosmos/gerrc"
)

// GrantQuerier reads authz grant and fee allowance facts from the chain. The
// chain is the source of truth for anything another party can grant or
// revoke behind the gateway's back.
type GrantQuerier interface {
	// HasGrant reports whether granter has an active authz grant to grantee
	// for the given message type URL.
	HasGrant(ctx context.Context, granter, grantee, msgTypeURL string) (bool, error)
	// Allowance returns the remaining spend limit of the fee allowance from
	// granter to grantee in the given denom. found is false when no
	// allowance exists.
	Allowance(ctx context.Context, granter, grantee, denom string) (amount string, found bool, err error)
}

// RESTQuerier queries grants through the chain's LCD REST endpoint.
type RESTQuerier struct {
	baseURL    string
	httpClient *http.Client
}

var _ GrantQuerier = &RESTQuerier{}

// NewRESTQuerier creates a querier against the LCD at baseURL.
func NewRESTQuerier(baseURL string) *RESTQuerier {
	return &RESTQuerier{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type lcdCoin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

type lcdGrantsResponse struct {
	Grants []json.RawMessage `json:"grants"`
}

// lcdAllowance covers both BasicAllowance and wrappers like
// AllowedMsgAllowance, which nest the basic allowance one level down.
type lcdAllowance struct {
	Type       string        `json:"@type"`
	SpendLimit []lcdCoin     `json:"spend_limit"`
	Allowance  *lcdAllowance `json:"allowance"`
}

type lcdAllowanceResponse struct {
	Allowance struct {
		Granter   string       `json:"granter"`
		Grantee   string       `json:"grantee"`
		Allowance lcdAllowance `json:"allowance"`
	} `json:"allowance"`
}

func (q *RESTQuerier) HasGrant(ctx context.Context, granter, grantee, msgTypeURL string) (bool, error) {
	endpoint := fmt.Sprintf("%s/cosmos/authz/v1beta1/grants?granter=%s&grantee=%s&msg_type_url=%s",
		q.baseURL, url.QueryEscape(granter), url.QueryEscape(grantee), url.QueryEscape(msgTypeURL))
	body, status, err := q.get(ctx, endpoint)
	if err != nil {
		return false, fmt.Errorf("query authz grants: %w", err)
	}
	if status == http.StatusNotFound {
		return false, nil
	}
	if status != http.StatusOK {
		return false, fmt.Errorf("query authz grants: status %d: %s: %w", status, string(body), gerrc.ErrUnavailable)
	}
	var resp lcdGrantsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return false, fmt.Errorf("decode authz grants: %w", err)
	}
	return len(resp.Grants) > 0, nil
}

func (q *RESTQuerier) Allowance(ctx context.Context, granter, grantee, denom string) (string, bool, error) {
	endpoint := fmt.Sprintf("%s/cosmos/feegrant/v1beta1/allowance/%s/%s",
		q.baseURL, url.PathEscape(granter), url.PathEscape(grantee))
	body, status, err := q.get(ctx, endpoint)
	if err != nil {
		return "", false, fmt.Errorf("query fee allowance: %w", err)
	}
	if status == http.StatusNotFound {
		return "", false, nil
	}
	if status != http.StatusOK {
		return "", false, fmt.Errorf("query fee allowance: status %d: %s: %w", status, string(body), gerrc.ErrUnavailable)
	}
	var resp lcdAllowanceResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", false, fmt.Errorf("decode fee allowance: %w", err)
	}
	for allowance := &resp.Allowance.Allowance; allowance != nil; allowance = allowance.Allowance {
		for _, coin := range allowance.SpendLimit {
			if coin.Denom == denom {
				return coin.Amount, true, nil
			}
		}
	}
	// allowance exists but carries no spend limit in this denom, e.g. an
	// unlimited BasicAllowance
	return "", true, nil
}

func (q *RESTQuerier) get(ctx context.Context, endpoint string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, err
	}
	resp, err := q.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close() // nolint:errcheck
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}
	return body, resp.StatusCode, nil
}
