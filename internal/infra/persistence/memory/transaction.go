package memory

import (
	"context"

	"gatekeeper/internal/domain/repository"
)

// transactionManager runs the callback against the shared store. Each repository
// call is atomic on its own; a failed callback does not undo earlier calls.
type transactionManager struct {
	accounts repository.AccountRepository
}

// NewTransactionManager binds the manager to an in-memory account store.
func NewTransactionManager(accounts repository.AccountRepository) repository.TransactionManager {
	return &transactionManager{accounts: accounts}
}

func (tm *transactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return fn(tm)
}

func (tm *transactionManager) NewAccountRepository() repository.AccountRepository {
	return tm.accounts
}
