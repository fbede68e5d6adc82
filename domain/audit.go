package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// OutcomeOK marks an audited operation that completed without error.
const OutcomeOK = "ok"

type AuditArg struct {
	Key   string
	Value string
}

// AuditEntry is one line of the operation trail.
type AuditEntry struct {
	ID        uuid.UUID
	At        time.Time
	Operation string
	Args      []AuditArg
	Outcome   string
}

func Arg(key string, value any) AuditArg {
	return AuditArg{Key: key, Value: fmt.Sprint(value)}
}

// FormatArgs renders args as "k=v, k=v" in call order.
func (e AuditEntry) FormatArgs() string {
	parts := make([]string, 0, len(e.Args))
	for _, a := range e.Args {
		parts = append(parts, a.Key+"="+a.Value)
	}
	return strings.Join(parts, ", ")
}
