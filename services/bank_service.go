package services

import (
	"bank-lab/contract"
	"bank-lab/domain"
	"bank-lab/errors"
	"context"
	"iter"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Audited operation names.
const (
	OpCreateClient  = "CREATE_CLIENT"
	OpCreateAccount = "CREATE_ACCOUNT"
	OpDeposit       = "DEPOSIT"
	OpWithdraw      = "WITHDRAW"
	OpStatement     = "STATEMENT"
)

type IBankService interface {
	CreateClient(ctx context.Context, req CreateClientRequest) (*domain.Client, error)
	FindClient(cpf string) (*domain.Client, error)
	ClientAccounts(cpf string) ([]*domain.Account, error)
	CreateAccount(ctx context.Context, req CreateAccountRequest) (*domain.Account, error)
	Deposit(ctx context.Context, cpf string, number int, amount decimal.Decimal) (domain.Entry, error)
	Withdraw(ctx context.Context, cpf string, number int, amount decimal.Decimal) (domain.Entry, error)
	Statement(ctx context.Context, cpf string, number int) (Statement, error)
	ListAccounts() iter.Seq[AccountRecord]
	Defaults() AccountDefaults
	Reject(ctx context.Context, op string, err error, args ...domain.AuditArg) error
}

// AccountDefaults applies to checking accounts created without explicit limits.
type AccountDefaults struct {
	Ceiling        decimal.Decimal
	MaxWithdrawals int
}

func DefaultAccountDefaults() AccountDefaults {
	return AccountDefaults{
		Ceiling:        domain.DefaultWithdrawalCeiling,
		MaxWithdrawals: domain.DefaultMaxWithdrawals,
	}
}

type CreateAccountRequest struct {
	CPF            string
	Ceiling        *decimal.Decimal
	MaxWithdrawals *int
}

type Statement struct {
	Agency  string
	Number  int
	Holder  string
	Entries []domain.Entry
	Balance decimal.Decimal
}

// AccountRecord is one line of the account listing.
type AccountRecord struct {
	Agency  string
	Number  int
	Holder  string
	Balance decimal.Decimal
}

// BankService is the session: it owns every client and account created
// during the run and writes each operation to the audit sink.
// It is meant for a single caller and holds no lock.
type BankService struct {
	log      *slog.Logger
	sink     contract.AuditSink
	clock    domain.Clock
	defaults AccountDefaults
	clients  []*domain.Client
	accounts []*domain.Account
}

func NewBankService(log *slog.Logger, sink contract.AuditSink, defaults AccountDefaults, clock domain.Clock) *BankService {
	if clock == nil {
		clock = func() time.Time { return time.Now().UTC() }
	}
	return &BankService{
		log:      log,
		sink:     sink,
		clock:    clock,
		defaults: defaults,
	}
}

func (s *BankService) Defaults() AccountDefaults {
	return s.defaults
}

func (s *BankService) CreateClient(ctx context.Context, req CreateClientRequest) (*domain.Client, error) {
	var client *domain.Client
	err := s.audited(ctx, OpCreateClient, []domain.AuditArg{
		domain.Arg("cpf", req.CPF),
		domain.Arg("name", req.Name),
		domain.Arg("birth_date", req.BirthDate),
		domain.Arg("address", req.Address),
	}, func() error {
		if err := ValidateCreateClient(req); err != nil {
			return err
		}
		if _, err := s.FindClient(req.CPF); err == nil {
			return errors.ErrDuplicateClient
		}
		client = domain.NewClient(req.CPF, req.Name, req.BirthDate, req.Address)
		s.clients = append(s.clients, client)
		s.log.Info("Client created", "cpf", req.CPF)
		return nil
	})
	return client, err
}

func (s *BankService) FindClient(cpf string) (*domain.Client, error) {
	client, ok := lo.Find(s.clients, func(c *domain.Client) bool {
		return c.CPF == cpf
	})
	if !ok {
		return nil, errors.ErrClientNotFound
	}
	return client, nil
}

func (s *BankService) ClientAccounts(cpf string) ([]*domain.Account, error) {
	client, err := s.FindClient(cpf)
	if err != nil {
		return nil, err
	}
	accounts := client.Accounts()
	if len(accounts) == 0 {
		return nil, errors.ErrNoAccounts
	}
	return accounts, nil
}

// CreateAccount opens a checking account numbered after the last one.
// Missing limits fall back to the service defaults.
func (s *BankService) CreateAccount(ctx context.Context, req CreateAccountRequest) (*domain.Account, error) {
	rule := domain.CheckingRule{
		Ceiling:        lo.FromPtrOr(req.Ceiling, s.defaults.Ceiling),
		MaxWithdrawals: lo.FromPtrOr(req.MaxWithdrawals, s.defaults.MaxWithdrawals),
	}
	number := len(s.accounts) + 1

	var account *domain.Account
	err := s.audited(ctx, OpCreateAccount, []domain.AuditArg{
		domain.Arg("cpf", req.CPF),
		domain.Arg("number", number),
		domain.Arg("ceiling", rule.Ceiling.StringFixed(2)),
		domain.Arg("max_withdrawals", rule.MaxWithdrawals),
	}, func() error {
		client, err := s.FindClient(req.CPF)
		if err != nil {
			return err
		}
		account = domain.NewCheckingAccount(number, client, rule, s.clock)
		s.accounts = append(s.accounts, account)
		client.AddAccount(account)
		s.log.Info("Account created", "cpf", req.CPF, "number", number)
		return nil
	})
	return account, err
}

func (s *BankService) Deposit(ctx context.Context, cpf string, number int, amount decimal.Decimal) (domain.Entry, error) {
	return s.execute(ctx, OpDeposit, cpf, number, domain.NewDeposit(amount))
}

func (s *BankService) Withdraw(ctx context.Context, cpf string, number int, amount decimal.Decimal) (domain.Entry, error) {
	return s.execute(ctx, OpWithdraw, cpf, number, domain.NewWithdrawal(amount))
}

func (s *BankService) execute(ctx context.Context, op, cpf string, number int, tx domain.Transaction) (domain.Entry, error) {
	var entry domain.Entry
	err := s.audited(ctx, op, []domain.AuditArg{
		domain.Arg("cpf", cpf),
		domain.Arg("number", number),
		domain.Arg("amount", tx.Amount().String()),
	}, func() error {
		client, account, err := s.resolve(cpf, number)
		if err != nil {
			return err
		}
		entry, err = client.Execute(account, tx)
		if err != nil {
			s.log.Debug("Transaction rejected", "operation", op, "number", number, "reason", err)
			return err
		}
		return nil
	})
	return entry, err
}

func (s *BankService) Statement(ctx context.Context, cpf string, number int) (Statement, error) {
	var statement Statement
	err := s.audited(ctx, OpStatement, []domain.AuditArg{
		domain.Arg("cpf", cpf),
		domain.Arg("number", number),
	}, func() error {
		_, account, err := s.resolve(cpf, number)
		if err != nil {
			return err
		}
		statement = Statement{
			Agency:  account.Agency(),
			Number:  account.Number(),
			Holder:  account.HolderName(),
			Entries: account.History().Entries(),
			Balance: account.Balance(),
		}
		return nil
	})
	return statement, err
}

// ListAccounts lazily yields every account in creation order.
func (s *BankService) ListAccounts() iter.Seq[AccountRecord] {
	return func(yield func(AccountRecord) bool) {
		for _, a := range s.accounts {
			record := AccountRecord{
				Agency:  a.Agency(),
				Number:  a.Number(),
				Holder:  a.HolderName(),
				Balance: a.Balance(),
			}
			if !yield(record) {
				return
			}
		}
	}
}

// Reject audits op as turned down with err before any state was touched,
// so requests stopped at the console still leave a trace. It returns err.
func (s *BankService) Reject(ctx context.Context, op string, err error, args ...domain.AuditArg) error {
	return s.audited(ctx, op, args, func() error { return err })
}

func (s *BankService) resolve(cpf string, number int) (*domain.Client, *domain.Account, error) {
	client, err := s.FindClient(cpf)
	if err != nil {
		return nil, nil, err
	}
	account, err := client.Account(number)
	if err != nil {
		return nil, nil, err
	}
	return client, account, nil
}

// audited runs fn and then writes one entry to the sink, whatever fn returned.
// A sink failure is logged and never replaces fn's result.
func (s *BankService) audited(ctx context.Context, op string, args []domain.AuditArg, fn func() error) error {
	err := fn()
	outcome := domain.OutcomeOK
	if err != nil {
		outcome = err.Error()
	}
	entry := domain.AuditEntry{
		ID:        uuid.New(),
		At:        s.clock(),
		Operation: op,
		Args:      args,
		Outcome:   outcome,
	}
	if sinkErr := s.sink.Record(ctx, entry); sinkErr != nil {
		s.log.Warn("Audit entry not recorded", "operation", op, "error", sinkErr)
	}
	return err
}
