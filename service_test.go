package minibank_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arhyth/minibank"
)

func newTestService() minibank.Service {
	log := zerolog.Nop()
	return minibank.NewService(minibank.NewBank(&log), &log)
}

func TestServiceOpen(t *testing.T) {
	t.Run("OpenSavings returns the new account description", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		svc := newTestService()

		desc, err := svc.OpenSavings(minibank.OpenSavingsReq{
			Holder:         "Alice Smith",
			InitialBalance: dec("1000"),
			InterestRate:   dec("0.03"),
		})
		reqrd.Nil(err)
		as.Equal("S1001", desc.ID)
		as.Equal(minibank.KindSavings, desc.Kind)
		as.Equal("1000", desc.Balance.String())
	})

	t.Run("OpenChecking clamps a negative initial balance", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		svc := newTestService()

		desc, err := svc.OpenChecking(minibank.OpenCheckingReq{
			Holder:         "Bob Johnson",
			InitialBalance: dec("-50"),
			OverdraftLimit: dec("100"),
		})
		reqrd.Nil(err)
		as.Equal("C2001", desc.ID)
		as.True(desc.Balance.IsZero())
	})
}

func TestServiceCharges(t *testing.T) {
	t.Run("scripted savings scenario", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		svc := newTestService()
		desc, err := svc.OpenSavings(minibank.OpenSavingsReq{
			Holder:         "Alice Smith",
			InitialBalance: dec("1000"),
			InterestRate:   dec("0.03"),
		})
		reqrd.Nil(err)

		bal, err := svc.Deposit(minibank.ChargeReq{AcctID: desc.ID, Amount: dec("250")})
		reqrd.Nil(err)
		as.Equal("1250", bal.String())

		bal, err = svc.Withdraw(minibank.ChargeReq{AcctID: desc.ID, Amount: dec("100")})
		reqrd.Nil(err)
		as.Equal("1150", bal.String())

		bal, err = svc.Withdraw(minibank.ChargeReq{AcctID: desc.ID, Amount: dec("1500")})
		as.ErrorAs(err, &minibank.ErrInsufficientFunds{})
		as.Nil(bal)

		bal, err = svc.ApplyInterest(minibank.InterestReq{AcctID: desc.ID})
		reqrd.Nil(err)
		as.Equal("1184.5", bal.String())
	})

	t.Run("returns ErrNotFound for unknown accounts", func(tt *testing.T) {
		as := assert.New(tt)
		svc := newTestService()

		_, err := svc.Deposit(minibank.ChargeReq{AcctID: "S1001", Amount: dec("1")})
		as.ErrorAs(err, &minibank.ErrNotFound{})
		_, err = svc.Withdraw(minibank.ChargeReq{AcctID: "C2001", Amount: dec("1")})
		as.ErrorAs(err, &minibank.ErrNotFound{})
		_, err = svc.Describe(minibank.DescribeReq{AcctID: "C2001"})
		as.ErrorAs(err, &minibank.ErrNotFound{})
		_, err = svc.ApplyInterest(minibank.InterestReq{AcctID: "S1001"})
		as.ErrorAs(err, &minibank.ErrNotFound{})
	})

	t.Run("ApplyInterest on a checking account is a kind mismatch", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		svc := newTestService()
		desc, err := svc.OpenChecking(minibank.OpenCheckingReq{
			Holder:         "Bob Johnson",
			InitialBalance: dec("500"),
			OverdraftLimit: dec("100"),
		})
		reqrd.Nil(err)

		bal, err := svc.ApplyInterest(minibank.InterestReq{AcctID: desc.ID})
		as.ErrorAs(err, &minibank.ErrKindMismatch{})
		as.Nil(bal)
	})
}

func TestServiceStatement(t *testing.T) {
	t.Run("writes a PDF of all accounts", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		svc := newTestService()
		_, err := svc.OpenSavings(minibank.OpenSavingsReq{Holder: "A", InitialBalance: dec("1"), InterestRate: dec("0.01")})
		reqrd.Nil(err)
		_, err = svc.OpenChecking(minibank.OpenCheckingReq{Holder: "B", InitialBalance: dec("2"), OverdraftLimit: dec("3")})
		reqrd.Nil(err)

		buf := new(bytes.Buffer)
		reqrd.Nil(svc.Statement(buf))
		as.True(bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	})
}
