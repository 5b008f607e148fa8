package minibank

import (
	"github.com/shopspring/decimal"
)

type Repository interface {
	OpenSavings(holder string, initial, rate decimal.Decimal) string
	OpenChecking(holder string, initial, limit decimal.Decimal) string
	Find(id string) (Account, error)
	FindSavings(id string) (*Savings, error)
	List() []Description
}
