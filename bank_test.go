package minibank_test

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arhyth/minibank"
)

func TestBankOpen(t *testing.T) {
	log := zerolog.Nop()

	t.Run("savings ids are distinct and increasing", func(tt *testing.T) {
		as := assert.New(tt)
		bank := minibank.NewBank(&log)
		ids := []string{
			bank.OpenSavings("A", dec("1"), dec("0.01")),
			bank.OpenSavings("B", dec("2"), dec("0.01")),
			bank.OpenSavings("C", dec("3"), dec("0.01")),
		}
		as.Equal([]string{"S1001", "S1002", "S1003"}, ids)
	})

	t.Run("checking ids never collide with savings ids", func(tt *testing.T) {
		as := assert.New(tt)
		bank := minibank.NewBank(&log)
		seen := map[string]bool{}
		for i := 0; i < 5; i++ {
			for _, id := range []string{
				bank.OpenSavings("S", dec("1"), dec("0.01")),
				bank.OpenChecking("C", dec("1"), dec("10")),
			} {
				as.False(seen[id], "id %s reused", id)
				seen[id] = true
			}
		}
		as.Len(seen, 10)
	})

	t.Run("second account opened is a checking account numbered from its own seed", func(tt *testing.T) {
		as := assert.New(tt)
		bank := minibank.NewBank(&log)
		as.Equal("S1001", bank.OpenSavings("Alice Smith", dec("1000"), dec("0.03")))
		as.Equal("C2002", bank.OpenChecking("Bob Johnson", dec("500"), dec("100")))
	})
}

func TestBankFind(t *testing.T) {
	log := zerolog.Nop()

	t.Run("returns ErrNotFound on a missing id", func(tt *testing.T) {
		as := assert.New(tt)
		bank := minibank.NewBank(&log)
		bank.OpenSavings("A", dec("1"), dec("0.01"))

		acct, err := bank.Find("S9999")
		as.Nil(acct)
		var nf minibank.ErrNotFound
		as.ErrorAs(err, &nf)
		as.Equal("S9999", nf.ID)
	})

	t.Run("returns the account matching its creation parameters", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		bank := minibank.NewBank(&log)
		bank.OpenSavings("A", dec("1"), dec("0.01"))
		id := bank.OpenChecking("Bob Johnson", dec("500"), dec("100"))

		acct, err := bank.Find(id)
		reqrd.Nil(err)
		desc := acct.Describe()
		as.Equal(id, desc.ID)
		as.Equal("Bob Johnson", desc.Holder)
		as.Equal("500", desc.Balance.String())
		reqrd.NotNil(desc.OverdraftLimit)
		as.Equal("100", desc.OverdraftLimit.String())
	})

	t.Run("returns the same borrowed account on every lookup", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		bank := minibank.NewBank(&log)
		id := bank.OpenSavings("A", dec("10"), dec("0.01"))

		first, err := bank.Find(id)
		reqrd.Nil(err)
		_, err = first.Deposit(dec("5"))
		reqrd.Nil(err)
		second, err := bank.Find(id)
		reqrd.Nil(err)
		as.Equal("15", second.Balance().String())
	})

	t.Run("FindSavings rejects a checking account", func(tt *testing.T) {
		as := assert.New(tt)
		bank := minibank.NewBank(&log)
		id := bank.OpenChecking("B", dec("10"), dec("10"))

		sav, err := bank.FindSavings(id)
		as.Nil(sav)
		var km minibank.ErrKindMismatch
		as.ErrorAs(err, &km)
		as.Equal(minibank.KindSavings, km.Want)

		_, err = bank.FindSavings("S1234")
		as.ErrorAs(err, &minibank.ErrNotFound{})
	})
}

func TestBankList(t *testing.T) {
	log := zerolog.Nop()

	t.Run("lists descriptions in creation order", func(tt *testing.T) {
		as := assert.New(tt)
		bank := minibank.NewBank(&log)
		as.Empty(bank.List())

		ids := []string{
			bank.OpenChecking("C", dec("1"), dec("1")),
			bank.OpenSavings("S", dec("1"), dec("0.01")),
			bank.OpenChecking("D", dec("1"), dec("1")),
		}
		descs := bank.List()
		as.Len(descs, 3)
		for i, d := range descs {
			as.Equal(ids[i], d.ID)
		}
		as.Equal(minibank.KindChecking, descs[0].Kind)
		as.Equal(minibank.KindSavings, descs[1].Kind)
	})
}

func TestBankConcurrentAccess(t *testing.T) {
	log := zerolog.Nop()
	as := assert.New(t)
	bank := minibank.NewBank(&log)
	id := bank.OpenChecking("B", dec("0"), dec("0"))
	acct, err := bank.Find(id)
	require.Nil(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			acct.Deposit(dec("2"))
		}()
		go func() {
			defer wg.Done()
			bank.OpenSavings("S", dec("1"), dec("0.01"))
			bank.List()
		}()
	}
	wg.Wait()

	as.Equal("100", acct.Balance().String())
	as.Len(bank.List(), 51)
}
