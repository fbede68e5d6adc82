//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"bank-lab/domain"
	"context"
)

// AuditSink receives the trail of audited operations.
type AuditSink interface {
	Record(ctx context.Context, entry domain.AuditEntry) error
}
