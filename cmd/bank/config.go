package main

import (
	"bank-lab/services"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	sinkFile   = "file"
	sinkBadger = "badger"
	sinkBoth   = "both"
)

type Config struct {
	LogLevel                 string `env:"LOG_LEVEL,default=WARN"`
	AuditSink                string `env:"AUDIT_SINK,default=file"`
	AuditLogPath             string `env:"AUDIT_LOG_PATH,default=transactions.log"`
	BadgerFilepath           string `env:"BADGER_FILEPATH,default=audit-db"`
	DefaultWithdrawalCeiling string `env:"DEFAULT_WITHDRAWAL_CEILING,default=500"`
	DefaultMaxWithdrawals    int    `env:"DEFAULT_MAX_WITHDRAWALS,default=3"`
	Colours                  bool   `env:"COLOURS,default=true"`
}

// AccountDefaults parses the checking limits applied when the user skips them.
func (c Config) AccountDefaults() (services.AccountDefaults, error) {
	ceiling, err := decimal.NewFromString(c.DefaultWithdrawalCeiling)
	if err != nil {
		return services.AccountDefaults{}, fmt.Errorf("DEFAULT_WITHDRAWAL_CEILING: %w", err)
	}
	if !ceiling.IsPositive() {
		return services.AccountDefaults{}, fmt.Errorf("DEFAULT_WITHDRAWAL_CEILING must be positive, got %s", ceiling)
	}
	if c.DefaultMaxWithdrawals <= 0 {
		return services.AccountDefaults{}, fmt.Errorf("DEFAULT_MAX_WITHDRAWALS must be positive, got %d", c.DefaultMaxWithdrawals)
	}
	return services.AccountDefaults{Ceiling: ceiling, MaxWithdrawals: c.DefaultMaxWithdrawals}, nil
}
