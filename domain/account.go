package domain

import (
	"bank-lab/errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Agency is the branch code shared by every account.
const Agency = "0001"

// Default checking limits.
var (
	DefaultWithdrawalCeiling = decimal.NewFromInt(500)
	DefaultMaxWithdrawals    = 3
)

// WithdrawalRule is the behaviour that distinguishes account kinds.
// It runs before the balance checks common to every account.
type WithdrawalRule interface {
	CheckWithdrawal(account *Account, amount decimal.Decimal) error
}

// CheckingRule caps each withdrawal and the number of withdrawals.
// The count covers the whole history, not only the current day.
type CheckingRule struct {
	Ceiling        decimal.Decimal
	MaxWithdrawals int
}

func (r CheckingRule) CheckWithdrawal(account *Account, amount decimal.Decimal) error {
	if amount.GreaterThan(r.Ceiling) {
		return errors.ErrWithdrawalLimitExceeded
	}
	if account.history.CountKind(KindWithdrawal) >= r.MaxWithdrawals {
		return errors.ErrWithdrawalCountExceeded
	}
	return nil
}

type Account struct {
	number  int
	owner   *Client
	balance decimal.Decimal
	history *History
	rule    WithdrawalRule
}

// NewAccount creates a plain account with a zero balance.
func NewAccount(number int, owner *Client, clock Clock) *Account {
	return &Account{
		number:  number,
		owner:   owner,
		balance: decimal.Zero,
		history: NewHistory(clock),
	}
}

// NewCheckingAccount creates an account bound to a CheckingRule.
func NewCheckingAccount(number int, owner *Client, rule CheckingRule, clock Clock) *Account {
	a := NewAccount(number, owner, clock)
	a.rule = rule
	return a
}

func (a *Account) Number() int {
	return a.number
}

func (a *Account) Agency() string {
	return Agency
}

func (a *Account) Owner() *Client {
	return a.owner
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

func (a *Account) History() *History {
	return a.history
}

// Rule returns the kind-specific withdrawal rule, nil for a plain account.
func (a *Account) Rule() WithdrawalRule {
	return a.rule
}

func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errors.ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	return nil
}

func (a *Account) Withdraw(amount decimal.Decimal) error {
	if a.rule != nil {
		if err := a.rule.CheckWithdrawal(a, amount); err != nil {
			return err
		}
	}
	if amount.GreaterThan(a.balance) {
		return errors.ErrInsufficientFunds
	}
	if !amount.IsPositive() {
		return errors.ErrInvalidAmount
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

func (a *Account) HolderName() string {
	if a.owner == nil {
		return ""
	}
	return a.owner.Name
}

func (a *Account) String() string {
	return fmt.Sprintf("Agency:\t%s\nC/C:\t\t%d\nHolder:\t%s\n", a.Agency(), a.number, a.HolderName())
}
