package orchestrator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var addressesDustedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "blobgate_addresses_dusted_total",
	Help: "Count of dust transfers broadcast successfully.",
})

var feeGrantsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "blobgate_fee_grants_total",
	Help: "Count of fee allowance grants broadcast successfully.",
})

var authzGrantsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "blobgate_authz_grants_total",
	Help: "Count of user authz grant transactions relayed successfully.",
})

var blobsSubmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "blobgate_blobs_submitted_total",
	Help: "Count of blobs submitted on behalf of users.",
})

var blobBytesSubmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "blobgate_blob_bytes_submitted_total",
	Help: "Total size in bytes of blobs submitted.",
})

var adminFeegrantsIssuedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "blobgate_admin_feegrants_issued_total",
	Help: "Count of feegrants executed on behalf of admins.",
})

var chainBroadcastFailures = promauto.NewCounter(prometheus.CounterOpts{
	Name: "blobgate_chain_broadcast_failures_total",
	Help: "Count of broadcasts rejected by the chain with a non-zero code.",
})
