package orchestrator

import (
	"fmt"

	tmpubsub "github.com/tendermint/tendermint/libs/pubsub"
	tmquery "github.com/tendermint/tendermint/libs/pubsub/query"
)

// EventTypeKey is the attribute key every gateway event is published under.
const EventTypeKey = "blobgate.event"

// Event type values.
const (
	EventAddressDusted   = "AddressDusted"
	EventFeeGranted      = "FeeGranted"
	EventAuthzGranted    = "AuthzGranted"
	EventAddressRevoked  = "AddressRevoked"
	EventBlobSubmitted   = "BlobSubmitted"
	EventFeegrantIssued  = "FeegrantIssued"
	EventAdminDelegation = "AdminDelegation"
)

// Event attribute maps, passed to PublishWithEvents.
var (
	EventListAddressDusted   = map[string][]string{EventTypeKey: {EventAddressDusted}}
	EventListFeeGranted      = map[string][]string{EventTypeKey: {EventFeeGranted}}
	EventListAuthzGranted    = map[string][]string{EventTypeKey: {EventAuthzGranted}}
	EventListAddressRevoked  = map[string][]string{EventTypeKey: {EventAddressRevoked}}
	EventListBlobSubmitted   = map[string][]string{EventTypeKey: {EventBlobSubmitted}}
	EventListFeegrantIssued  = map[string][]string{EventTypeKey: {EventFeegrantIssued}}
	EventListAdminDelegation = map[string][]string{EventTypeKey: {EventAdminDelegation}}
)

// Queries for subscribers.
var (
	QueryAddressDusted  = QueryFor(EventTypeKey, EventAddressDusted)
	QueryFeeGranted     = QueryFor(EventTypeKey, EventFeeGranted)
	QueryAuthzGranted   = QueryFor(EventTypeKey, EventAuthzGranted)
	QueryBlobSubmitted  = QueryFor(EventTypeKey, EventBlobSubmitted)
	QueryFeegrantIssued = QueryFor(EventTypeKey, EventFeegrantIssued)
)

// QueryFor returns a pubsub query for one event type.
func QueryFor(eventTypeKey, eventType string) tmpubsub.Query {
	return tmquery.MustParse(fmt.Sprintf("%s='%s'", eventTypeKey, eventType))
}

// EventDataAddress accompanies lifecycle transitions of one user address.
type EventDataAddress struct {
	Address string
	TxHash  string
}

// EventDataBlobSubmitted accompanies a successful blob broadcast.
type EventDataBlobSubmitted struct {
	Address      string
	NamespaceHex string
	Size         int
	TxHash       string
}

// EventDataFeegrantIssued accompanies a successful admin-delegated feegrant.
type EventDataFeegrantIssued struct {
	Admin      string
	Recipient  string
	AmountUtia int64
	TxHash     string
}
