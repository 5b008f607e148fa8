package minibank

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindSavings  Kind = "savings"
	KindChecking Kind = "checking"
)

var (
	_ Account = (*Savings)(nil)
	_ Account = (*Checking)(nil)

	hundred = decimal.NewFromInt(100)
)

// Account is the capability set shared by every account kind. Accounts are
// only ever created by a Bank, which keeps ownership of them; values handed
// out by Bank.Find are borrowed.
type Account interface {
	ID() string
	Holder() string
	Balance() decimal.Decimal
	// Deposit credits a positive amount and returns the resulting balance.
	Deposit(amount decimal.Decimal) (decimal.Decimal, error)
	// Withdraw debits a positive amount under the account's own rules and
	// returns the resulting balance. A failed withdrawal leaves the balance as is.
	Withdraw(amount decimal.Decimal) (decimal.Decimal, error)
	Describe() Description
}

// Description is a point-in-time summary of an account. Exactly one of
// InterestRate (as a percentage) and OverdraftLimit is set, depending on Kind.
type Description struct {
	Kind           Kind             `json:"kind"`
	ID             string           `json:"id"`
	Holder         string           `json:"holder"`
	Balance        decimal.Decimal  `json:"balance"`
	InterestRate   *decimal.Decimal `json:"interest_rate_pct,omitempty"`
	OverdraftLimit *decimal.Decimal `json:"overdraft_limit,omitempty"`
}

type account struct {
	mu      sync.Mutex
	acctID  string
	holder  string
	balance decimal.Decimal
	log     *zerolog.Logger
}

func (a *account) init(id, holder string, initial decimal.Decimal, log *zerolog.Logger) {
	if initial.IsNegative() {
		log.Warn().
			Err(ErrNegativeInitialBalance{Amount: initial}).
			Str("acct_id", id).
			Msg("initial balance clamped")
		initial = decimal.Zero
	}
	a.acctID = id
	a.holder = holder
	a.balance = initial
	a.log = log
}

func (a *account) ID() string {
	return a.acctID
}

func (a *account) Holder() string {
	return a.holder
}

func (a *account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

func (a *account) Deposit(amount decimal.Decimal) (decimal.Decimal, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.credit(amount, "deposit")
}

// credit must be called with mu held.
func (a *account) credit(amount decimal.Decimal, op string) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		a.log.Info().
			Str("acct_id", a.acctID).
			Str("op", op).
			Stringer("amount", amount).
			Msg("invalid amount")
		return a.balance, ErrInvalidAmount{Amount: amount}
	}
	a.balance = a.balance.Add(amount)
	a.log.Debug().
		Str("acct_id", a.acctID).
		Str("op", op).
		Stringer("amount", amount).
		Stringer("balance", a.balance).
		Msg("credited")
	return a.balance, nil
}

// debit must be called with mu held and after the caller has checked the
// account's withdrawal rule.
func (a *account) debit(amount decimal.Decimal) decimal.Decimal {
	a.balance = a.balance.Sub(amount)
	a.log.Debug().
		Str("acct_id", a.acctID).
		Str("op", "withdraw").
		Stringer("amount", amount).
		Stringer("balance", a.balance).
		Msg("debited")
	return a.balance
}

func (a *account) rejectAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	a.log.Info().
		Str("acct_id", a.acctID).
		Str("op", "withdraw").
		Stringer("amount", amount).
		Msg("invalid amount")
	return a.balance, ErrInvalidAmount{Amount: amount}
}

func (a *account) rejectFunds(amount, available decimal.Decimal) (decimal.Decimal, error) {
	a.log.Info().
		Str("acct_id", a.acctID).
		Stringer("amount", amount).
		Stringer("available", available).
		Msg("insufficient funds")
	return a.balance, ErrInsufficientFunds{AcctID: a.acctID, Available: available}
}

// Savings never goes below zero and accrues interest on demand.
type Savings struct {
	account
	rate decimal.Decimal
}

func newSavings(id, holder string, initial, rate decimal.Decimal, log *zerolog.Logger) *Savings {
	s := &Savings{rate: rate}
	s.init(id, holder, initial, log)
	return s
}

func (s *Savings) InterestRate() decimal.Decimal {
	return s.rate
}

func (s *Savings) Withdraw(amount decimal.Decimal) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !amount.IsPositive() {
		return s.rejectAmount(amount)
	}
	if s.balance.LessThan(amount) {
		return s.rejectFunds(amount, s.balance)
	}
	return s.debit(amount), nil
}

// ApplyInterest credits balance * rate through the deposit rule and returns
// the interest credited. A zero rate or an empty balance yields a zero amount,
// which the deposit rule rejects with ErrInvalidAmount.
func (s *Savings) ApplyInterest() (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	interest := s.balance.Mul(s.rate)
	if _, err := s.credit(interest, "interest"); err != nil {
		return decimal.Zero, err
	}
	return interest, nil
}

func (s *Savings) Describe() Description {
	s.mu.Lock()
	defer s.mu.Unlock()
	pct := s.rate.Mul(hundred)
	return Description{
		Kind:         KindSavings,
		ID:           s.acctID,
		Holder:       s.holder,
		Balance:      s.balance,
		InterestRate: &pct,
	}
}

// Checking may go negative down to -overdraftLimit.
type Checking struct {
	account
	overdraftLimit decimal.Decimal
}

func newChecking(id, holder string, initial, limit decimal.Decimal, log *zerolog.Logger) *Checking {
	c := &Checking{overdraftLimit: limit}
	c.init(id, holder, initial, log)
	return c
}

func (c *Checking) OverdraftLimit() decimal.Decimal {
	return c.overdraftLimit
}

func (c *Checking) InOverdraft() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.balance.IsNegative()
}

func (c *Checking) Withdraw(amount decimal.Decimal) (decimal.Decimal, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !amount.IsPositive() {
		return c.rejectAmount(amount)
	}
	if c.balance.Sub(amount).LessThan(c.overdraftLimit.Neg()) {
		return c.rejectFunds(amount, c.balance.Add(c.overdraftLimit))
	}
	bal := c.debit(amount)
	if bal.IsNegative() {
		c.log.Warn().
			Str("acct_id", c.acctID).
			Stringer("balance", bal).
			Stringer("overdraft_limit", c.overdraftLimit).
			Msg("account in overdraft")
	}
	return bal, nil
}

func (c *Checking) Describe() Description {
	c.mu.Lock()
	defer c.mu.Unlock()
	limit := c.overdraftLimit
	return Description{
		Kind:           KindChecking,
		ID:             c.acctID,
		Holder:         c.holder,
		Balance:        c.balance,
		OverdraftLimit: &limit,
	}
}
