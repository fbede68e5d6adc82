package domain

import (
	"bank-lab/errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTransaction_Apply_Dispatches_On_Kind(t *testing.T) {
	req := require.New(t)
	account := NewAccount(1, nil, nil)

	req.NoError(NewDeposit(amount("40")).Apply(account))
	req.NoError(NewWithdrawal(amount("15")).Apply(account))
	req.True(amount("25").Equal(account.Balance()))

	// Apply alone never writes the history.
	req.Zero(account.History().Len())

	req.ErrorIs(NewWithdrawal(amount("26")).Apply(account), errors.ErrInsufficientFunds)
	req.Error(Transaction{kind: "Transfer", amount: amount("1")}.Apply(account))
}

func TestClient_Execute_Records_Only_Successes(t *testing.T) {
	req := require.New(t)
	client, account := newChecking(newFakeClock())

	entry, err := client.Execute(account, NewDeposit(amount("100")))
	req.NoError(err)
	req.Equal(KindDeposit, entry.Kind)

	_, err = client.Execute(account, NewDeposit(amount("-5")))
	req.ErrorIs(err, errors.ErrInvalidAmount)

	req.Equal(1, account.History().Len())
	req.True(amount("100").Equal(account.Balance()))
}

func TestClient_Execute_Daily_Limit(t *testing.T) {
	req := require.New(t)
	clock := newFakeClock()
	client, account := newChecking(clock)

	_, err := client.Execute(account, NewDeposit(amount("100")))
	req.NoError(err)
	_, err = client.Execute(account, NewWithdrawal(amount("10")))
	req.NoError(err)

	// Third attempt of the day is rejected whatever its kind or validity.
	_, err = client.Execute(account, NewDeposit(amount("1")))
	req.ErrorIs(err, errors.ErrDailyTransactionLimitExceeded)
	_, err = client.Execute(account, NewDeposit(amount("-1")))
	req.ErrorIs(err, errors.ErrDailyTransactionLimitExceeded)
	req.Equal(2, account.History().Len())
	req.True(amount("90").Equal(account.Balance()))

	clock.Advance(24 * time.Hour)
	_, err = client.Execute(account, NewDeposit(amount("1")))
	req.NoError(err)
}

func TestClient_Execute_Failed_Attempts_Do_Not_Count_Toward_Daily_Limit(t *testing.T) {
	req := require.New(t)
	client, account := newChecking(newFakeClock())

	for range 5 {
		_, err := client.Execute(account, NewWithdrawal(amount("10")))
		req.ErrorIs(err, errors.ErrInsufficientFunds)
	}
	_, err := client.Execute(account, NewDeposit(amount("10")))
	req.NoError(err)
}

func TestClient_Execute_Daily_Limit_Is_Per_Account(t *testing.T) {
	req := require.New(t)
	clock := newFakeClock()
	client, first := newChecking(clock)
	second := NewCheckingAccount(2, client, CheckingRule{Ceiling: DefaultWithdrawalCeiling, MaxWithdrawals: 3}, clock.Now)
	client.AddAccount(second)

	for range DailyTransactionLimit {
		_, err := client.Execute(first, NewDeposit(amount("10")))
		req.NoError(err)
	}
	_, err := client.Execute(first, NewDeposit(amount("10")))
	req.ErrorIs(err, errors.ErrDailyTransactionLimitExceeded)

	_, err = client.Execute(second, NewDeposit(amount("10")))
	req.NoError(err)
}

func TestClient_Account_Lookup(t *testing.T) {
	req := require.New(t)
	client, account := newChecking(newFakeClock())

	got, err := client.Account(1)
	req.NoError(err)
	req.Same(account, got)

	_, err = client.Account(2)
	req.ErrorIs(err, errors.ErrAccountNotFound)
	req.Len(client.Accounts(), 1)
	req.Equal("Alice", account.Owner().Name)
}

// Deposit 100, withdraw 50, a 600 withdrawal hits the ceiling, and the fourth
// withdrawal hits the lifetime count. Days advance so the daily gate stays out
// of the way.
func TestScenario_Checking_Account_Lifecycle(t *testing.T) {
	req := require.New(t)
	clock := newFakeClock()
	client, account := newChecking(clock)
	req.True(account.Balance().IsZero())

	_, err := client.Execute(account, NewDeposit(amount("100")))
	req.NoError(err)
	req.True(amount("100").Equal(account.Balance()))
	req.Len(account.History().Entries(), 1)
	req.Equal(KindDeposit, account.History().Entries()[0].Kind)

	_, err = client.Execute(account, NewWithdrawal(amount("50")))
	req.NoError(err)
	req.True(amount("50").Equal(account.Balance()))

	clock.Advance(24 * time.Hour)
	_, err = client.Execute(account, NewWithdrawal(amount("600")))
	req.ErrorIs(err, errors.ErrWithdrawalLimitExceeded)
	req.True(amount("50").Equal(account.Balance()))

	_, err = client.Execute(account, NewWithdrawal(amount("10")))
	req.NoError(err)
	_, err = client.Execute(account, NewWithdrawal(amount("10")))
	req.NoError(err)

	clock.Advance(24 * time.Hour)
	_, err = client.Execute(account, NewWithdrawal(amount("10")))
	req.ErrorIs(err, errors.ErrWithdrawalCountExceeded)
	req.True(amount("30").Equal(account.Balance()))
	req.Equal(4, account.History().Len())
}
