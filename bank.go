package minibank

import (
	"strconv"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	savingsPrefix  = "S"
	savingsSeed    = 1001
	checkingPrefix = "C"
	checkingSeed   = 2001
)

var (
	_ Repository = (*Bank)(nil)
)

// Bank owns every account it opens. Accounts are kept in creation order and
// are never removed.
type Bank struct {
	mu    sync.RWMutex
	accts []Account
	log   *zerolog.Logger
}

func NewBank(log *zerolog.Logger) *Bank {
	return &Bank{log: log}
}

// OpenSavings opens a savings account and returns its id. Ids are the
// account's position in the bank offset by a per-kind seed, behind a
// per-kind prefix, so they increase and never collide across kinds.
func (b *Bank) OpenSavings(holder string, initial, rate decimal.Decimal) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID(savingsPrefix, savingsSeed)
	b.accts = append(b.accts, newSavings(id, holder, initial, rate, b.log))
	b.log.Info().
		Str("acct_id", id).
		Str("kind", string(KindSavings)).
		Msg("account opened")
	return id
}

func (b *Bank) OpenChecking(holder string, initial, limit decimal.Decimal) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID(checkingPrefix, checkingSeed)
	b.accts = append(b.accts, newChecking(id, holder, initial, limit, b.log))
	b.log.Info().
		Str("acct_id", id).
		Str("kind", string(KindChecking)).
		Msg("account opened")
	return id
}

// nextID must be called with mu held.
func (b *Bank) nextID(prefix string, seed int) string {
	return prefix + strconv.Itoa(len(b.accts)+seed)
}

func (b *Bank) Find(id string) (Account, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, a := range b.accts {
		if a.ID() == id {
			return a, nil
		}
	}
	return nil, ErrNotFound{ID: id}
}

func (b *Bank) FindSavings(id string) (*Savings, error) {
	acct, err := b.Find(id)
	if err != nil {
		return nil, err
	}
	s, ok := acct.(*Savings)
	if !ok {
		return nil, ErrKindMismatch{ID: id, Want: KindSavings}
	}
	return s, nil
}

func (b *Bank) List() []Description {
	b.mu.RLock()
	defer b.mu.RUnlock()
	descs := make([]Description, 0, len(b.accts))
	for _, a := range b.accts {
		descs = append(descs, a.Describe())
	}
	return descs
}
