package main

import (
	"bank-lab/contract"
	"bank-lab/repositories"
	"bank-lab/sink"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// openAuditSink builds the sink selected by AUDIT_SINK. The returned func
// releases whatever was opened and is always safe to call.
func openAuditSink(config Config, log *slog.Logger) (contract.AuditSink, func(), error) {
	noop := func() {}
	switch config.AuditSink {
	case sinkFile:
		return sink.NewFileSink(config.AuditLogPath, log), noop, nil
	case sinkBadger, sinkBoth:
		db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
			WithLoggingLevel(badger.WARNING))
		if err != nil {
			return nil, noop, fmt.Errorf("audit database opening failed: %w", err)
		}
		closeDB := func() {
			log.Info("Closing BadgerDB...")
			_ = db.Close()
		}
		disk := sink.NewDiskSink(repositories.NewAuditRepository(db, log, nil), log)
		if config.AuditSink == sinkBadger {
			return disk, closeDB, nil
		}
		return sink.NewFanoutSink(sink.NewFileSink(config.AuditLogPath, log), disk), closeDB, nil
	default:
		return nil, noop, fmt.Errorf("unknown AUDIT_SINK %q (expected %s, %s or %s)",
			config.AuditSink, sinkFile, sinkBadger, sinkBoth)
	}
}
