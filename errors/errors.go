package errors

import "fmt"

// Transaction rules
var (
	ErrInvalidAmount                 = fmt.Errorf("invalid amount")
	ErrInsufficientFunds             = fmt.Errorf("insufficient funds")
	ErrWithdrawalLimitExceeded       = fmt.Errorf("withdrawal exceeds the account limit")
	ErrWithdrawalCountExceeded       = fmt.Errorf("maximum number of withdrawals exceeded")
	ErrDailyTransactionLimitExceeded = fmt.Errorf("daily transaction limit exceeded")
)

// Directory lookups and registration
var (
	ErrClientNotFound   = fmt.Errorf("client not found")
	ErrNoAccounts       = fmt.Errorf("client has no account")
	ErrAccountNotFound  = fmt.Errorf("account not found")
	ErrInvalidSelection = fmt.Errorf("invalid selection")
	ErrDuplicateClient  = fmt.Errorf("a client with this CPF already exists")
	ErrInvalidCPF       = fmt.Errorf("invalid CPF")
)
