package chainclient

import "context"

// ChainInterface exposes the global clock: the chain's tip height. The height
// advances externally and is monotonic; the engine only reads it.
type ChainInterface interface {
	GetTipHeight(ctx context.Context) (uint64, error)
}
