package bankclient

import "context"

// BankInterface is the external value-custody collaborator. A transfer is
// atomic on the bank side: it either fully succeeds or fails with no effect.
type BankInterface interface {
	Transfer(ctx context.Context, from, to string, amount uint64) error
}
