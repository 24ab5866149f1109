package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dymensionxyz/gerr-cosmos/gerrc"
	"go.uber.org/multierr"

	"github.com/stationlabs/blobgate/store"
	"github.com/stationlabs/blobgate/types"
)

const (
	addressCollection = "addresses"
	adminCollection   = "admins"
	issueCollection   = "feegrant_issues"
	pendingCollection = "pending_blobs"
)

// Tracker owns all gateway bookkeeping in the document store. The store only
// supports read-merge-write, so every mutation of a record goes through a
// per-key lock: two concurrent writers to the same address would otherwise
// lose updates.
type Tracker struct {
	store  store.DocStore
	logger types.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewTracker creates a tracker over the given store.
func NewTracker(s store.DocStore, logger types.Logger) *Tracker {
	return &Tracker{
		store:  s,
		logger: logger,
		locks:  map[string]*sync.Mutex{},
	}
}

// keyLock returns the single-writer lock for one record key.
func (t *Tracker) keyLock(key string) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()
	l, ok := t.locks[key]
	if !ok {
		l = &sync.Mutex{}
		t.locks[key] = l
	}
	return l
}

// GetAddress returns the state record for one user address, or gerrc.ErrNotFound.
func (t *Tracker) GetAddress(address string) (types.AddressState, error) {
	doc, err := t.store.FindUnique(addressCollection, address)
	if err != nil {
		return types.AddressState{}, fmt.Errorf("find address %s: %w", address, err)
	}
	var st types.AddressState
	if err := json.Unmarshal(doc, &st); err != nil {
		return types.AddressState{}, fmt.Errorf("unmarshal address %s: %w", address, err)
	}
	return st, nil
}

// Bind returns the state record for the address, creating a fresh one if the
// address has never been seen. At most one record exists per address.
func (t *Tracker) Bind(address string) (types.AddressState, error) {
	l := t.keyLock(addressCollection + "/" + address)
	l.Lock()
	defer l.Unlock()

	st, err := t.GetAddress(address)
	if err == nil {
		return st, nil
	}
	if !errors.Is(err, gerrc.ErrNotFound) {
		return types.AddressState{}, err
	}

	now := time.Now().UTC()
	st = types.AddressState{Address: address, CreatedAt: now, UpdatedAt: now}
	doc, err := json.Marshal(st)
	if err != nil {
		return types.AddressState{}, err
	}
	if err := t.store.Create(addressCollection, address, doc); err != nil {
		return types.AddressState{}, fmt.Errorf("create address %s: %w", address, err)
	}
	t.logger.Debug("Bound new address.", "address", address)
	return st, nil
}

// MutateAddress applies fn to the current record and writes it back, under
// the address's single-writer lock. The record must exist.
func (t *Tracker) MutateAddress(address string, fn func(*types.AddressState)) (types.AddressState, error) {
	l := t.keyLock(addressCollection + "/" + address)
	l.Lock()
	defer l.Unlock()

	st, err := t.GetAddress(address)
	if err != nil {
		return types.AddressState{}, err
	}
	fn(&st)
	st.UpdatedAt = time.Now().UTC()

	doc, err := json.Marshal(st)
	if err != nil {
		return types.AddressState{}, err
	}
	if err := t.store.Update(addressCollection, address, doc); err != nil {
		return types.AddressState{}, fmt.Errorf("update address %s: %w", address, err)
	}
	return st, nil
}

// Revoke marks the address ineligible for submission. Terminal: no workflow
// clears it.
func (t *Tracker) Revoke(address string) (types.AddressState, error) {
	return t.MutateAddress(address, func(st *types.AddressState) {
		st.Revoked = true
	})
}

// GetAdmin returns the delegation record for an admin address, or gerrc.ErrNotFound.
func (t *Tracker) GetAdmin(address string) (types.AdminDelegation, error) {
	doc, err := t.store.FindUnique(adminCollection, address)
	if err != nil {
		return types.AdminDelegation{}, fmt.Errorf("find admin %s: %w", address, err)
	}
	var d types.AdminDelegation
	if err := json.Unmarshal(doc, &d); err != nil {
		return types.AdminDelegation{}, fmt.Errorf("unmarshal admin %s: %w", address, err)
	}
	return d, nil
}

// UpsertAdmin applies fn to the admin record (zero value if new) and persists
// it, under the admin's single-writer lock.
func (t *Tracker) UpsertAdmin(address string, fn func(*types.AdminDelegation)) (types.AdminDelegation, error) {
	l := t.keyLock(adminCollection + "/" + address)
	l.Lock()
	defer l.Unlock()

	d, err := t.GetAdmin(address)
	created := false
	if errors.Is(err, gerrc.ErrNotFound) {
		d = types.AdminDelegation{Address: address}
		created = true
	} else if err != nil {
		return types.AdminDelegation{}, err
	}

	fn(&d)
	d.UpdatedAt = time.Now().UTC()

	doc, err := json.Marshal(d)
	if err != nil {
		return types.AdminDelegation{}, err
	}
	if created {
		err = t.store.Create(adminCollection, address, doc)
	} else {
		err = t.store.Update(adminCollection, address, doc)
	}
	if err != nil {
		return types.AdminDelegation{}, fmt.Errorf("persist admin %s: %w", address, err)
	}
	return d, nil
}

// CreateIssue persists a new feegrant issue record.
func (t *Tracker) CreateIssue(issue types.FeegrantIssue) error {
	doc, err := json.Marshal(issue)
	if err != nil {
		return err
	}
	if err := t.store.Create(issueCollection, issue.ID, doc); err != nil {
		return fmt.Errorf("create feegrant issue %s: %w", issue.ID, err)
	}
	return nil
}

// GetIssue returns one feegrant issue record.
func (t *Tracker) GetIssue(id string) (types.FeegrantIssue, error) {
	doc, err := t.store.FindUnique(issueCollection, id)
	if err != nil {
		return types.FeegrantIssue{}, fmt.Errorf("find feegrant issue %s: %w", id, err)
	}
	var issue types.FeegrantIssue
	if err := json.Unmarshal(doc, &issue); err != nil {
		return types.FeegrantIssue{}, err
	}
	return issue, nil
}

// MutateIssue applies fn to an issue record and writes it back.
func (t *Tracker) MutateIssue(id string, fn func(*types.FeegrantIssue)) (types.FeegrantIssue, error) {
	l := t.keyLock(issueCollection + "/" + id)
	l.Lock()
	defer l.Unlock()

	issue, err := t.GetIssue(id)
	if err != nil {
		return types.FeegrantIssue{}, err
	}
	fn(&issue)
	doc, err := json.Marshal(issue)
	if err != nil {
		return types.FeegrantIssue{}, err
	}
	if err := t.store.Update(issueCollection, id, doc); err != nil {
		return types.FeegrantIssue{}, fmt.Errorf("update feegrant issue %s: %w", id, err)
	}
	return issue, nil
}

// CreatePending persists an in-flight blob record.
func (t *Tracker) CreatePending(pb types.PendingBlob) error {
	doc, err := json.Marshal(pb)
	if err != nil {
		return err
	}
	if err := t.store.Create(pendingCollection, pb.ID, doc); err != nil {
		return fmt.Errorf("create pending blob %s: %w", pb.ID, err)
	}
	return nil
}

// DeletePending removes an in-flight blob record once its broadcast settled.
func (t *Tracker) DeletePending(id string) error {
	return t.store.Delete(pendingCollection, id)
}

// PurgeExpired removes pending-blob records whose expiry passed and returns
// how many were removed. The caller decides when to run it; there is no
// internal scheduler.
func (t *Tracker) PurgeExpired(now time.Time) (int, error) {
	docs, err := t.store.FindMany(pendingCollection)
	if err != nil {
		return 0, err
	}
	purged := 0
	var errs error
	for id, doc := range docs {
		var pb types.PendingBlob
		if err := json.Unmarshal(doc, &pb); err != nil {
			t.logger.Error("Unmarshal pending blob, purging.", "id", id, "err", err)
		} else if pb.ExpiresAt.After(now) {
			continue
		}
		if err := t.store.Delete(pendingCollection, id); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		purged++
	}
	return purged, errs
}
