// Package rpc exposes the gateway workflows over a small JSON HTTP API. This
// is the surface the web application calls; all validation and state
// handling lives in the orchestrators.
package rpc

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dymensionxyz/gerr-cosmos/gerrc"

	"github.com/stationlabs/blobgate/namespace"
	"github.com/stationlabs/blobgate/orchestrator"
	"github.com/stationlabs/blobgate/state"
	"github.com/stationlabs/blobgate/types"
)

// Server serves the gateway API.
type Server struct {
	logger  types.Logger
	orch    *orchestrator.Orchestrator
	admin   *orchestrator.AdminOrchestrator
	tracker *state.Tracker
	srv     *http.Server
}

// NewServer creates the API server on the given listen address.
func NewServer(listenAddr string, logger types.Logger, orch *orchestrator.Orchestrator, admin *orchestrator.AdminOrchestrator, tracker *state.Tracker) *Server {
	s := &Server{
		logger:  logger,
		orch:    orch,
		admin:   admin,
		tracker: tracker,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/dust", s.handleDust)
	mux.HandleFunc("/v1/feegrant", s.handleFeeGrant)
	mux.HandleFunc("/v1/authz", s.handleAuthz)
	mux.HandleFunc("/v1/blobs", s.handleSubmitBlob)
	mux.HandleFunc("/v1/revoke", s.handleRevoke)
	mux.HandleFunc("/v1/address", s.handleAddress)
	mux.HandleFunc("/v1/namespace/random", s.handleRandomNamespace)
	mux.HandleFunc("/v1/admin/delegation", s.handleAdminDelegation)
	mux.HandleFunc("/v1/admin/feegrant", s.handleAdminFeegrant)

	s.srv = &http.Server{
		Addr:              listenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler exposes the route table, used by tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Start listens in a background goroutine.
func (s *Server) Start() {
	go func() {
		err := s.srv.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("API server.", "err", err)
		}
	}()
	s.logger.Info("API server listening.", "addr", s.srv.Addr)
}

// Stop drains in-flight requests and shuts the listener down.
func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

type addressRequest struct {
	Address string `json:"address"`
}

type authzRequest struct {
	Address        string `json:"address"`
	SignedTxBase64 string `json:"signed_tx_base64"`
}

type submitBlobRequest struct {
	Address    string `json:"address"`
	Namespace  string `json:"namespace"`
	BlobBase64 string `json:"blob_base64"`
}

type adminDelegationRequest struct {
	Admin     string     `json:"admin"`
	TxHash    string     `json:"tx_hash"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type adminFeegrantRequest struct {
	Admin      string     `json:"admin"`
	Recipient  string     `json:"recipient"`
	AmountUtia int64      `json:"amount_utia"`
	Expiration *time.Time `json:"expiration,omitempty"`
}

type txOutcomeResponse struct {
	TxHash string `json:"tx_hash,omitempty"`
	Noop   bool   `json:"noop"`
}

type submitBlobResponse struct {
	TxHash           string `json:"tx_hash"`
	CommitmentBase64 string `json:"commitment_base64"`
}

func (s *Server) handleDust(w http.ResponseWriter, r *http.Request) {
	var req addressRequest
	if !s.decode(w, r, &req) {
		return
	}
	out, err := s.orch.Dust(r.Context(), req.Address)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, txOutcomeResponse{TxHash: out.TxHash, Noop: out.Noop})
}

func (s *Server) handleFeeGrant(w http.ResponseWriter, r *http.Request) {
	var req addressRequest
	if !s.decode(w, r, &req) {
		return
	}
	out, err := s.orch.GrantFeeAllowance(r.Context(), req.Address)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, txOutcomeResponse{TxHash: out.TxHash, Noop: out.Noop})
}

func (s *Server) handleAuthz(w http.ResponseWriter, r *http.Request) {
	var req authzRequest
	if !s.decode(w, r, &req) {
		return
	}
	out, err := s.orch.BroadcastAuthz(r.Context(), req.Address, req.SignedTxBase64)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, txOutcomeResponse{TxHash: out.TxHash, Noop: out.Noop})
}

func (s *Server) handleSubmitBlob(w http.ResponseWriter, r *http.Request) {
	var req submitBlobRequest
	if !s.decode(w, r, &req) {
		return
	}
	blob, err := base64.StdEncoding.DecodeString(req.BlobBase64)
	if err != nil {
		s.writeError(w, gerrc.ErrInvalidArgument)
		return
	}
	res, err := s.orch.SubmitBlob(r.Context(), req.Address, req.Namespace, blob)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, submitBlobResponse{
		TxHash:           res.TxHash,
		CommitmentBase64: base64.StdEncoding.EncodeToString(res.Commitment),
	})
}

func (s *Server) handleRevoke(w http.ResponseWriter, r *http.Request) {
	var req addressRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.orch.Revoke(r.Context(), req.Address); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, map[string]bool{"revoked": true})
}

func (s *Server) handleAddress(w http.ResponseWriter, r *http.Request) {
	address := r.URL.Query().Get("address")
	if address == "" {
		s.writeError(w, gerrc.ErrInvalidArgument)
		return
	}
	// reconcile the cached allowance against the chain on the read path
	st, err := s.orch.RefreshAllowance(r.Context(), address)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, st)
}

func (s *Server) handleRandomNamespace(w http.ResponseWriter, r *http.Request) {
	ns, err := namespace.Random()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, map[string]string{"namespace": ns.Hex()})
}

func (s *Server) handleAdminDelegation(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		admin := r.URL.Query().Get("admin")
		if admin == "" {
			s.writeError(w, gerrc.ErrInvalidArgument)
			return
		}
		record, err := s.tracker.GetAdmin(admin)
		if err != nil {
			s.writeError(w, err)
			return
		}
		s.writeJSON(w, record)
		return
	}

	var req adminDelegationRequest
	if !s.decode(w, r, &req) {
		return
	}
	record, err := s.admin.RecordAuthzGrant(r.Context(), req.Admin, req.TxHash, req.ExpiresAt)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, record)
}

func (s *Server) handleAdminFeegrant(w http.ResponseWriter, r *http.Request) {
	var req adminFeegrantRequest
	if !s.decode(w, r, &req) {
		return
	}
	issue, err := s.admin.ExecuteAdminFeegrant(r.Context(), req.Admin, req.Recipient, req.AmountUtia, req.Expiration)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, issue)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeError(w, gerrc.ErrInvalidArgument)
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Encode API response.", "err", err)
	}
}

// writeError maps the error taxonomy onto HTTP status codes, preserving the
// message so the caller can distinguish "not yet eligible" from "failed".
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, gerrc.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, gerrc.ErrOutOfRange):
		status = http.StatusRequestEntityTooLarge
	case errors.Is(err, gerrc.ErrFailedPrecondition):
		status = http.StatusPreconditionFailed
	case errors.Is(err, gerrc.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, gerrc.ErrUnavailable):
		status = http.StatusBadGateway
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
