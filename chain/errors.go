package chain

import "fmt"

// TxResult is the outcome of a broadcast as seen at CheckTx time.
type TxResult struct {
	Code   uint32
	TxHash string
	RawLog string
}

// TxError is returned when a transaction was accepted by the mempool RPC but
// rejected at CheckTx with a non-zero code. The raw log is preserved so
// callers can inspect the chain's reason.
type TxError struct {
	Code   uint32
	TxHash string
	RawLog string
}

func (e *TxError) Error() string {
	return fmt.Sprintf("tx rejected: code: %d: log: %s", e.Code, e.RawLog)
}
