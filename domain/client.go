package domain

import (
	"bank-lab/errors"

	"github.com/samber/lo"
)

// DailyTransactionLimit caps how many entries one account may record per day.
const DailyTransactionLimit = 2

// Client is a natural person identified by CPF.
type Client struct {
	CPF       string
	Name      string
	BirthDate string
	Address   string
	accounts  []*Account
}

func NewClient(cpf, name, birthDate, address string) *Client {
	return &Client{
		CPF:       cpf,
		Name:      name,
		BirthDate: birthDate,
		Address:   address,
	}
}

func (c *Client) AddAccount(account *Account) {
	c.accounts = append(c.accounts, account)
}

// Accounts returns the client's accounts in creation order.
func (c *Client) Accounts() []*Account {
	out := make([]*Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

func (c *Client) Account(number int) (*Account, error) {
	account, ok := lo.Find(c.accounts, func(a *Account) bool {
		return a.Number() == number
	})
	if !ok {
		return nil, errors.ErrAccountNotFound
	}
	return account, nil
}

// Execute gates tx behind the daily limit of the target account, applies it
// and records the entry on success. The gate counts only this account's
// entries of the day, whatever the transaction kind.
func (c *Client) Execute(account *Account, tx Transaction) (Entry, error) {
	if len(account.History().Today()) >= DailyTransactionLimit {
		return Entry{}, errors.ErrDailyTransactionLimitExceeded
	}
	if err := tx.Apply(account); err != nil {
		return Entry{}, err
	}
	return account.History().add(tx), nil
}
