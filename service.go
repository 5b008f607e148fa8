package minibank

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type OpenSavingsReq struct {
	Holder         string          `json:"holder"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	InterestRate   decimal.Decimal `json:"interest_rate"`
}

type OpenCheckingReq struct {
	Holder         string          `json:"holder"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	OverdraftLimit decimal.Decimal `json:"overdraft_limit"`
}

type ChargeReq struct {
	Amount decimal.Decimal `json:"amount"`
	AcctID string
}

type DescribeReq struct {
	AcctID string
}

type InterestReq struct {
	AcctID string
}

type Service interface {
	OpenSavings(OpenSavingsReq) (*Description, error)
	OpenChecking(OpenCheckingReq) (*Description, error)
	Describe(DescribeReq) (*Description, error)
	List() ([]Description, error)
	Deposit(ChargeReq) (*decimal.Decimal, error)
	Withdraw(ChargeReq) (*decimal.Decimal, error)
	ApplyInterest(InterestReq) (*decimal.Decimal, error)
	Statement(io.Writer) error
}

var (
	_ Service = (*serviceImpl)(nil)
)

func NewService(repo Repository, log *zerolog.Logger) *serviceImpl {
	return &serviceImpl{
		repo: repo,
		log:  log,
	}
}

type serviceImpl struct {
	repo Repository
	log  *zerolog.Logger
}

func (s *serviceImpl) OpenSavings(req OpenSavingsReq) (*Description, error) {
	id := s.repo.OpenSavings(req.Holder, req.InitialBalance, req.InterestRate)
	return s.Describe(DescribeReq{AcctID: id})
}

func (s *serviceImpl) OpenChecking(req OpenCheckingReq) (*Description, error) {
	id := s.repo.OpenChecking(req.Holder, req.InitialBalance, req.OverdraftLimit)
	return s.Describe(DescribeReq{AcctID: id})
}

func (s *serviceImpl) Describe(req DescribeReq) (*Description, error) {
	acct, err := s.repo.Find(req.AcctID)
	if err != nil {
		return nil, err
	}
	desc := acct.Describe()
	return &desc, nil
}

func (s *serviceImpl) List() ([]Description, error) {
	return s.repo.List(), nil
}

func (s *serviceImpl) Deposit(req ChargeReq) (*decimal.Decimal, error) {
	acct, err := s.repo.Find(req.AcctID)
	if err != nil {
		return nil, err
	}
	bal, err := acct.Deposit(req.Amount)
	if err != nil {
		return nil, err
	}
	return &bal, nil
}

func (s *serviceImpl) Withdraw(req ChargeReq) (*decimal.Decimal, error) {
	acct, err := s.repo.Find(req.AcctID)
	if err != nil {
		return nil, err
	}
	bal, err := acct.Withdraw(req.Amount)
	if err != nil {
		return nil, err
	}
	return &bal, nil
}

// ApplyInterest returns the balance after interest has been credited.
func (s *serviceImpl) ApplyInterest(req InterestReq) (*decimal.Decimal, error) {
	sav, err := s.repo.FindSavings(req.AcctID)
	if err != nil {
		return nil, err
	}
	interest, err := sav.ApplyInterest()
	if err != nil {
		return nil, err
	}
	bal := sav.Balance()
	s.log.Info().
		Str("acct_id", req.AcctID).
		Stringer("interest", interest).
		Stringer("balance", bal).
		Msg("interest applied")
	return &bal, nil
}

func (s *serviceImpl) Statement(w io.Writer) error {
	if err := WriteStatement(w, s.repo.List()); err != nil {
		s.log.Err(err).Msg("error rendering statement")
		return ErrInternalServer
	}
	return nil
}
