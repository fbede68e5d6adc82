package sink

import (
	"bank-lab/domain"
	"context"
	"fmt"
	"log/slog"
	"os"
)

const fileTimeLayout = "2006-01-02 15:04:05.000000"

// FileSink appends one text line per audit entry to a log file.
// The file is opened in append mode for every entry and never truncated.
type FileSink struct {
	path string
	log  *slog.Logger
}

func NewFileSink(path string, log *slog.Logger) FileSink {
	return FileSink{path: path, log: log}
}

func (f FileSink) Record(_ context.Context, entry domain.AuditEntry) error {
	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open audit log %s: %w", f.path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			f.log.Warn("Unable to close audit log", "path", f.path, "error", cerr)
		}
	}()

	_, err = fmt.Fprintln(file, FormatLine(entry))
	return err
}

// FormatLine renders "timestamp: OPERATION - args: k=v, ... - outcome: ok".
func FormatLine(entry domain.AuditEntry) string {
	return fmt.Sprintf("%s: %s - args: %s - outcome: %s",
		entry.At.Format(fileTimeLayout),
		entry.Operation,
		entry.FormatArgs(),
		entry.Outcome,
	)
}
