package msgbuilder

const (
	// ShareSize is the size in bytes of one share.
	ShareSize = 512

	// FirstSparseShareContentSize is the number of payload bytes in the first
	// share of a sparse sequence (namespace, info byte and sequence length
	// take up the rest).
	FirstSparseShareContentSize = 478

	// ContinuationSparseShareContentSize is the number of payload bytes in
	// each continuation share.
	ContinuationSparseShareContentSize = 482

	// PFBGasFixedCost is a rough estimate for the "fixed cost" in the gas cost
	// formula: signature verification, tx size, read access to accounts.
	PFBGasFixedCost = 75000

	// BytesPerBlobInfo is a rough estimation for the amount of extra bytes in
	// information a blob adds to the size of the underlying transaction.
	BytesPerBlobInfo = 70

	// DefaultGasPerBlobByte is the default gas cost deducted per byte of blob
	// included in a PayForBlobs txn.
	DefaultGasPerBlobByte = 8

	// DefaultTxSizeCostPerByte is the gas charged per byte of transaction.
	DefaultTxSizeCostPerByte uint64 = 10

	// ExecWrapGasOverhead covers the authz MsgExec envelope around the PFB:
	// the grant lookup plus the extra Any encoding.
	ExecWrapGasOverhead = 35000
)

// SparseSharesNeeded returns the number of shares needed to store a sequence
// of sequenceLen bytes.
func SparseSharesNeeded(sequenceLen uint32) int {
	if sequenceLen == 0 {
		return 0
	}
	if sequenceLen < FirstSparseShareContentSize {
		return 1
	}

	bytesAvailable := FirstSparseShareContentSize
	sharesNeeded := 1
	for uint32(bytesAvailable) < sequenceLen {
		bytesAvailable += ContinuationSparseShareContentSize
		sharesNeeded++
	}
	return sharesNeeded
}

// GasToConsume works out the extra gas charged to pay for a set of blobs in a PFB.
func GasToConsume(blobSizes []uint32, gasPerByte uint32) uint64 {
	var totalSharesUsed uint64
	for _, size := range blobSizes {
		totalSharesUsed += uint64(SparseSharesNeeded(size))
	}
	return totalSharesUsed * ShareSize * uint64(gasPerByte)
}

// EstimateGas estimates the total gas required to pay for a set of blobs in a
// PFB. It is a linear model dependent on the governance parameters gasPerByte
// and txSizeCost, assuming the PFB is the only message in the transaction.
func EstimateGas(blobSizes []uint32, gasPerByte uint32, txSizeCost uint64) uint64 {
	return GasToConsume(blobSizes, gasPerByte) + (txSizeCost * BytesPerBlobInfo * uint64(len(blobSizes))) + PFBGasFixedCost
}

// EstimateExecPFBGas estimates gas for a single-blob PFB wrapped in a MsgExec
// envelope, using the default governance parameters.
func EstimateExecPFBGas(blobSize uint32) uint64 {
	return EstimateGas([]uint32{blobSize}, DefaultGasPerBlobByte, DefaultTxSizeCostPerByte) + ExecWrapGasOverhead
}
