package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	KindDeposit    TransactionKind = "Deposit"
	KindWithdrawal TransactionKind = "Withdrawal"
)

// Transaction is a single deposit or withdrawal attempt.
// The amount is fixed at construction.
type Transaction struct {
	kind   TransactionKind
	amount decimal.Decimal
}

func NewDeposit(amount decimal.Decimal) Transaction {
	return Transaction{kind: KindDeposit, amount: amount}
}

func NewWithdrawal(amount decimal.Decimal) Transaction {
	return Transaction{kind: KindWithdrawal, amount: amount}
}

func (t Transaction) Kind() TransactionKind {
	return t.kind
}

func (t Transaction) Amount() decimal.Decimal {
	return t.amount
}

// Apply mutates the account balance. A non-nil error means nothing changed.
// Recording the history entry is left to the caller.
func (t Transaction) Apply(account *Account) error {
	switch t.kind {
	case KindDeposit:
		return account.Deposit(t.amount)
	case KindWithdrawal:
		return account.Withdraw(t.amount)
	default:
		return fmt.Errorf("unknown transaction kind %q", t.kind)
	}
}
