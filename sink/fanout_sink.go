package sink

import (
	"bank-lab/contract"
	"bank-lab/domain"
	"context"
	"errors"
)

// FanoutSink forwards each entry to every sink, even when one of them fails.
type FanoutSink struct {
	sinks []contract.AuditSink
}

func NewFanoutSink(sinks ...contract.AuditSink) FanoutSink {
	return FanoutSink{sinks: sinks}
}

func (f FanoutSink) Record(ctx context.Context, entry domain.AuditEntry) error {
	var errs []error
	for _, s := range f.sinks {
		if err := s.Record(ctx, entry); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
