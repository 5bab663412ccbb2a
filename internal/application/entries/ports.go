package entries

import (
	"context"

	"github.com/gemeinde/wegewart-api/internal/domain/repository"
)

// TxRunner executes fn with an entry repository bound to one transaction.
// Commit on nil, rollback otherwise.
type TxRunner interface {
	Run(ctx context.Context, fn func(entries repository.WorkEntryRepository) error) error
}
