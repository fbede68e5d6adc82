// Package console is the text menu in front of the bank service.
// It parses user input, picks accounts and renders results; every rule
// lives in the service and the domain.
package console

import (
	"bank-lab/domain"
	"bank-lab/errors"
	"bank-lab/services"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/gookit/color"
	"github.com/shopspring/decimal"
)

const menuText = `
================ MENU ================
[d]	Deposit
[s]	Withdraw
[e]	Statement
[nc]	New account
[lc]	List accounts
[nu]	New client
[q]	Quit
=> `

type Menu struct {
	svc     services.IBankService
	in      *reader
	out     io.Writer
	log     *slog.Logger
	colours bool
}

func NewMenu(svc services.IBankService, in io.Reader, out io.Writer, log *slog.Logger, colours bool) *Menu {
	m := &Menu{svc: svc, out: out, log: log, colours: colours}
	m.in = newReader(in, out, m.failure)
	return m
}

// Run loops until the user quits, the input ends or ctx is cancelled.
func (m *Menu) Run(ctx context.Context) error {
	handlers := map[string]func(context.Context) error{
		"d":  m.deposit,
		"s":  m.withdraw,
		"e":  m.statement,
		"nc": m.newAccount,
		"lc": m.listAccounts,
		"nu": m.newClient,
	}
	for ctx.Err() == nil {
		option, err := m.in.prompt(menuText)
		if err != nil {
			return ignoreEOF(err)
		}
		option = strings.ToLower(option)
		if option == "q" {
			return nil
		}
		handler, ok := handlers[option]
		if !ok {
			m.failure("Invalid operation, please select the desired operation again.")
			continue
		}
		if err := handler(ctx); err != nil {
			return ignoreEOF(err)
		}
	}
	return nil
}

func ignoreEOF(err error) error {
	if stderrors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (m *Menu) deposit(ctx context.Context) error {
	return m.transaction(ctx, services.OpDeposit, "Enter the deposit amount: ", "Deposit completed successfully!", m.svc.Deposit)
}

func (m *Menu) withdraw(ctx context.Context) error {
	return m.transaction(ctx, services.OpWithdraw, "Enter the withdrawal amount: ", "Withdrawal completed successfully!", m.svc.Withdraw)
}

type transactionFunc func(ctx context.Context, cpf string, number int, amount decimal.Decimal) (domain.Entry, error)

func (m *Menu) transaction(ctx context.Context, op, amountPrompt, success string, run transactionFunc) error {
	cpf, err := m.in.prompt("Enter the client's CPF: ")
	if err != nil {
		return err
	}
	if _, err := m.svc.FindClient(cpf); err != nil {
		m.reject(ctx, op, err, domain.Arg("cpf", cpf))
		return nil
	}
	amount, err := m.in.readAmount(amountPrompt)
	if err != nil {
		return err
	}
	account, err := m.selectAccount(ctx, op, cpf, domain.Arg("cpf", cpf), domain.Arg("amount", amount.String()))
	if err != nil || account == nil {
		return err
	}
	if _, err := run(ctx, cpf, account.Number(), amount); err != nil {
		m.report(err)
		return nil
	}
	m.success(success)
	return nil
}

func (m *Menu) statement(ctx context.Context) error {
	cpf, err := m.in.prompt("Enter the client's CPF: ")
	if err != nil {
		return err
	}
	if _, err := m.svc.FindClient(cpf); err != nil {
		m.reject(ctx, services.OpStatement, err, domain.Arg("cpf", cpf))
		return nil
	}
	account, err := m.selectAccount(ctx, services.OpStatement, cpf, domain.Arg("cpf", cpf))
	if err != nil || account == nil {
		return err
	}
	statement, err := m.svc.Statement(ctx, cpf, account.Number())
	if err != nil {
		m.report(err)
		return nil
	}
	renderStatement(m.out, statement)
	return nil
}

func (m *Menu) newClient(ctx context.Context) error {
	cpf, err := m.in.prompt("Enter the CPF (numbers only): ")
	if err != nil {
		return err
	}
	if !domain.ValidCPF(cpf) {
		m.reject(ctx, services.OpCreateClient, errors.ErrInvalidCPF, domain.Arg("cpf", cpf))
		return nil
	}
	if _, err := m.svc.FindClient(cpf); err == nil {
		m.reject(ctx, services.OpCreateClient, errors.ErrDuplicateClient, domain.Arg("cpf", cpf))
		return nil
	}

	req := services.CreateClientRequest{CPF: cpf}
	if req.Name, err = m.in.prompt("Enter the full name: "); err != nil {
		return err
	}
	if req.BirthDate, err = m.in.prompt("Enter the birth date (dd-mm-yyyy): "); err != nil {
		return err
	}
	if req.Address, err = m.in.prompt("Enter the address (street, number - district - city/state): "); err != nil {
		return err
	}

	if _, err := m.svc.CreateClient(ctx, req); err != nil {
		m.report(err)
		return nil
	}
	m.success("Client created successfully!")
	return nil
}

func (m *Menu) newAccount(ctx context.Context) error {
	cpf, err := m.in.prompt("Enter the client's CPF: ")
	if err != nil {
		return err
	}
	if _, err := m.svc.FindClient(cpf); err != nil {
		_ = m.svc.Reject(ctx, services.OpCreateAccount, err, domain.Arg("cpf", cpf))
		m.failure("Client not found, account creation flow ended!")
		return nil
	}

	defaults := m.svc.Defaults()
	ceilingInvalid := fmt.Sprintf("Invalid limit, using default %s.", defaults.Ceiling.StringFixed(2))
	ceiling, err := m.in.readOptionalDecimal(
		fmt.Sprintf("Enter the withdrawal limit (default %s): ", defaults.Ceiling.StringFixed(2)),
		ceilingInvalid,
	)
	if err != nil {
		return err
	}
	if ceiling != nil && !ceiling.IsPositive() {
		m.failure(ceilingInvalid)
		ceiling = nil
	}

	countInvalid := fmt.Sprintf("Invalid withdrawal count, using default %d.", defaults.MaxWithdrawals)
	maxWithdrawals, err := m.in.readOptionalInt(
		fmt.Sprintf("Enter the maximum number of withdrawals (default %d): ", defaults.MaxWithdrawals),
		countInvalid,
	)
	if err != nil {
		return err
	}
	if maxWithdrawals != nil && *maxWithdrawals <= 0 {
		m.failure(countInvalid)
		maxWithdrawals = nil
	}

	account, err := m.svc.CreateAccount(ctx, services.CreateAccountRequest{
		CPF:            cpf,
		Ceiling:        ceiling,
		MaxWithdrawals: maxWithdrawals,
	})
	if err != nil {
		m.report(err)
		return nil
	}
	m.success(fmt.Sprintf("Account %d created successfully!", account.Number()))
	return nil
}

func (m *Menu) listAccounts(_ context.Context) error {
	fmt.Fprintln(m.out, strings.Repeat("=", 100))
	if renderAccounts(m.out, m.svc.ListAccounts()) == 0 {
		fmt.Fprintln(m.out, "No accounts registered.")
	}
	return nil
}

// selectAccount returns a nil account after auditing and reporting a lookup
// or selection failure under op; a non-nil error only comes from the input
// stream.
func (m *Menu) selectAccount(ctx context.Context, op, cpf string, args ...domain.AuditArg) (*domain.Account, error) {
	accounts, err := m.svc.ClientAccounts(cpf)
	if err != nil {
		m.reject(ctx, op, err, args...)
		return nil, nil
	}
	fmt.Fprintln(m.out, "\nSelect the account:")
	for i, a := range accounts {
		fmt.Fprintf(m.out, "[%d] Agency: %s, Number: %d\n", i+1, a.Agency(), a.Number())
	}
	choice, err := m.in.readInt("Enter the account option: ")
	if err != nil {
		return nil, err
	}
	if choice < 1 || choice > len(accounts) {
		m.reject(ctx, op, errors.ErrInvalidSelection, append(args, domain.Arg("choice", choice))...)
		return nil, nil
	}
	return accounts[choice-1], nil
}

// reject records a request turned down before it reached the service.
func (m *Menu) reject(ctx context.Context, op string, err error, args ...domain.AuditArg) {
	m.report(m.svc.Reject(ctx, op, err, args...))
}

func (m *Menu) report(err error) {
	m.log.Debug("Operation failed", "error", err)
	m.failure(message(err))
}

func (m *Menu) success(msg string) {
	line := fmt.Sprintf("\n=== %s ===", msg)
	if m.colours {
		line = color.Green.Sprint(line)
	}
	fmt.Fprintln(m.out, line)
}

func (m *Menu) failure(msg string) {
	line := fmt.Sprintf("\n@@@ %s @@@", msg)
	if m.colours {
		line = color.Red.Sprint(line)
	}
	fmt.Fprintln(m.out, line)
}

func message(err error) string {
	switch {
	case stderrors.Is(err, errors.ErrInvalidAmount):
		return "Operation failed! The amount entered is invalid."
	case stderrors.Is(err, errors.ErrInsufficientFunds):
		return "Operation failed! You do not have enough balance."
	case stderrors.Is(err, errors.ErrWithdrawalLimitExceeded):
		return "Operation failed! The withdrawal amount exceeds the limit."
	case stderrors.Is(err, errors.ErrWithdrawalCountExceeded):
		return "Operation failed! Maximum number of withdrawals exceeded."
	case stderrors.Is(err, errors.ErrDailyTransactionLimitExceeded):
		return "You have exceeded the number of transactions allowed for today!"
	case stderrors.Is(err, errors.ErrClientNotFound):
		return "Client not found!"
	case stderrors.Is(err, errors.ErrNoAccounts):
		return "Client has no account!"
	case stderrors.Is(err, errors.ErrAccountNotFound):
		return "Account not found!"
	case stderrors.Is(err, errors.ErrInvalidSelection):
		return "Invalid option!"
	case stderrors.Is(err, errors.ErrDuplicateClient):
		return "A client with this CPF already exists!"
	case stderrors.Is(err, errors.ErrInvalidCPF):
		return "Invalid CPF!"
	default:
		return "Unexpected error: " + err.Error()
	}
}
