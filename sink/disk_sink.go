package sink

import (
	"bank-lab/domain"
	"bank-lab/repositories"
	"context"
	"fmt"
	"log/slog"
)

// DiskSink stores the audit trail in BadgerDB through the audit repository.
// Failures are returned to the caller, which owns the logging.
type DiskSink struct {
	repository repositories.IAuditRepository
	log        *slog.Logger
}

func NewDiskSink(repository repositories.IAuditRepository, log *slog.Logger) DiskSink {
	return DiskSink{repository: repository, log: log}
}

func (d DiskSink) Record(_ context.Context, entry domain.AuditEntry) error {
	if err := d.repository.StoreEntry(toDiskAuditEntry(entry)); err != nil {
		return fmt.Errorf("store audit entry %s: %w", entry.Operation, err)
	}
	d.log.Debug("Audit entry stored", "operation", entry.Operation, "id", entry.ID)
	return nil
}

func toDiskAuditEntry(entry domain.AuditEntry) repositories.DiskAuditEntry {
	return repositories.DiskAuditEntry{
		ID:        entry.ID,
		At:        entry.At,
		Operation: entry.Operation,
		Args:      entry.Args,
		Outcome:   entry.Outcome,
	}
}
