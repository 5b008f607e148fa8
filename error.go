package minibank

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInternalServer     = errors.New("internal server error")
	ErrServiceUnavailable = errors.New("service unavailable")
)

type ErrBadRequest struct {
	Fields map[string]string `json:"fields"`
}

func (e ErrBadRequest) Error() string {
	return fmt.Sprintf("missing/invalid params: %v", e.Fields)
}

type ErrNotFound struct {
	ID string `json:"id"`
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("account `%s` not found", e.ID)
}

// ErrInvalidAmount is returned for non-positive deposit, withdrawal and interest amounts.
type ErrInvalidAmount struct {
	Amount decimal.Decimal `json:"amount"`
}

func (e ErrInvalidAmount) Error() string {
	return fmt.Sprintf("invalid amount %s: must be greater than zero", e.Amount)
}

// ErrInsufficientFunds is returned when a withdrawal would take the balance
// below what the account allows. Available is the most that can be withdrawn.
type ErrInsufficientFunds struct {
	AcctID    string          `json:"acct_id"`
	Available decimal.Decimal `json:"available"`
}

func (e ErrInsufficientFunds) Error() string {
	return fmt.Sprintf("insufficient funds in `%s`: max available %s", e.AcctID, e.Available)
}

// ErrNegativeInitialBalance is only ever logged; the balance is clamped to zero.
type ErrNegativeInitialBalance struct {
	Amount decimal.Decimal `json:"amount"`
}

func (e ErrNegativeInitialBalance) Error() string {
	return fmt.Sprintf("initial balance %s cannot be negative, set to 0", e.Amount)
}

type ErrKindMismatch struct {
	ID   string `json:"id"`
	Want Kind   `json:"want"`
}

func (e ErrKindMismatch) Error() string {
	return fmt.Sprintf("account `%s` is not a %s account", e.ID, e.Want)
}
