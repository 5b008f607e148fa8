package minibank

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/sync/semaphore"
)

type Middleware func(Service) Service

// Chain applies mws so that the first one is the outermost.
func Chain(svc Service, mws ...Middleware) Service {
	for i := len(mws) - 1; i >= 0; i-- {
		svc = mws[i](svc)
	}
	return svc
}

//
// Rate limiting middlewares
//

// limitMiddleware limits the number of in-flight requests to the service by using
// a weighted semaphore, i.e., x/sync/semaphore.Semaphore with an acquisition timeout.
// Requests that cannot get a token within the timeout are shed with
// ErrServiceUnavailable.
type limitMiddleware struct {
	next   Service
	limits *ServiceLimits
}

var (
	_ Service = (*limitMiddleware)(nil)
)

type ServiceLimits struct {
	Timeout time.Duration
	Write   *semaphore.Weighted
	Read    *semaphore.Weighted
	Report  *semaphore.Weighted
}

func NewServiceLimits(cfg LimitsConfig) *ServiceLimits {
	return &ServiceLimits{
		Timeout: cfg.Timeout,
		Write:   semaphore.NewWeighted(cfg.Write),
		Read:    semaphore.NewWeighted(cfg.Read),
		Report:  semaphore.NewWeighted(cfg.Report),
	}
}

func NewLimitMiddleware(limits *ServiceLimits) Middleware {
	return func(next Service) Service {
		return &limitMiddleware{
			next:   next,
			limits: limits,
		}
	}
}

func (l *limitMiddleware) acquire(sem *semaphore.Weighted) (func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), l.limits.Timeout)
	defer cancel()
	if err := sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}
	return func() { sem.Release(1) }, nil
}

func (l *limitMiddleware) OpenSavings(req OpenSavingsReq) (*Description, error) {
	release, err := l.acquire(l.limits.Write)
	if err != nil {
		return nil, err
	}
	defer release()
	return l.next.OpenSavings(req)
}

func (l *limitMiddleware) OpenChecking(req OpenCheckingReq) (*Description, error) {
	release, err := l.acquire(l.limits.Write)
	if err != nil {
		return nil, err
	}
	defer release()
	return l.next.OpenChecking(req)
}

func (l *limitMiddleware) Describe(req DescribeReq) (*Description, error) {
	release, err := l.acquire(l.limits.Read)
	if err != nil {
		return nil, err
	}
	defer release()
	return l.next.Describe(req)
}

func (l *limitMiddleware) List() ([]Description, error) {
	release, err := l.acquire(l.limits.Read)
	if err != nil {
		return nil, err
	}
	defer release()
	return l.next.List()
}

func (l *limitMiddleware) Deposit(req ChargeReq) (*decimal.Decimal, error) {
	release, err := l.acquire(l.limits.Write)
	if err != nil {
		return nil, err
	}
	defer release()
	return l.next.Deposit(req)
}

func (l *limitMiddleware) Withdraw(req ChargeReq) (*decimal.Decimal, error) {
	release, err := l.acquire(l.limits.Write)
	if err != nil {
		return nil, err
	}
	defer release()
	return l.next.Withdraw(req)
}

func (l *limitMiddleware) ApplyInterest(req InterestReq) (*decimal.Decimal, error) {
	release, err := l.acquire(l.limits.Write)
	if err != nil {
		return nil, err
	}
	defer release()
	return l.next.ApplyInterest(req)
}

func (l *limitMiddleware) Statement(w io.Writer) error {
	release, err := l.acquire(l.limits.Report)
	if err != nil {
		return err
	}
	defer release()
	return l.next.Statement(w)
}

type ServiceBreaker struct {
	Write  *gobreaker.CircuitBreaker[any]
	Read   *gobreaker.CircuitBreaker[any]
	Report *gobreaker.CircuitBreaker[any]
}

// NewServiceBreaker builds one breaker per operation group. Only
// ErrServiceUnavailable counts as a failure; domain errors such as
// ErrInsufficientFunds are answers, not faults.
func NewServiceBreaker(cfg BreakerConfig) *ServiceBreaker {
	settings := func(name string) gobreaker.Settings {
		return gobreaker.Settings{
			Name:        name,
			MaxRequests: cfg.MaxRequests,
			Interval:    cfg.Interval,
			Timeout:     cfg.Timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= cfg.ConsecutiveFailures
			},
			IsSuccessful: func(err error) bool {
				return !errors.Is(err, ErrServiceUnavailable)
			},
		}
	}
	return &ServiceBreaker{
		Write:  gobreaker.NewCircuitBreaker[any](settings("write")),
		Read:   gobreaker.NewCircuitBreaker[any](settings("read")),
		Report: gobreaker.NewCircuitBreaker[any](settings("report")),
	}
}

// circuitBreakMiddleware is a middleware that implements the circuit breaker pattern.
// It works in conjunction with limitMiddleware to limit the number of in-flight
// requests to the service when the circuit is not in `closed` state, i.e., the service
// is experiencing heavy load and is struggling to release tokens from the limit
// semaphores within request deadline
type circuitBreakMiddleware struct {
	next  Service
	brkrs *ServiceBreaker
}

var (
	_ Service = (*circuitBreakMiddleware)(nil)
)

func NewCircuitBreakMiddleware(brkrs *ServiceBreaker) Middleware {
	return func(next Service) Service {
		return &circuitBreakMiddleware{
			next:  next,
			brkrs: brkrs,
		}
	}
}

func breakerExecute[T any](cb *gobreaker.CircuitBreaker[any], fn func() (T, error)) (T, error) {
	res, err := cb.Execute(func() (any, error) {
		v, err := fn()
		return v, err
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		err = fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}
	out, _ := res.(T)
	return out, err
}

func (c *circuitBreakMiddleware) OpenSavings(req OpenSavingsReq) (*Description, error) {
	return breakerExecute(c.brkrs.Write, func() (*Description, error) {
		return c.next.OpenSavings(req)
	})
}

func (c *circuitBreakMiddleware) OpenChecking(req OpenCheckingReq) (*Description, error) {
	return breakerExecute(c.brkrs.Write, func() (*Description, error) {
		return c.next.OpenChecking(req)
	})
}

func (c *circuitBreakMiddleware) Describe(req DescribeReq) (*Description, error) {
	return breakerExecute(c.brkrs.Read, func() (*Description, error) {
		return c.next.Describe(req)
	})
}

func (c *circuitBreakMiddleware) List() ([]Description, error) {
	return breakerExecute(c.brkrs.Read, c.next.List)
}

func (c *circuitBreakMiddleware) Deposit(req ChargeReq) (*decimal.Decimal, error) {
	return breakerExecute(c.brkrs.Write, func() (*decimal.Decimal, error) {
		return c.next.Deposit(req)
	})
}

func (c *circuitBreakMiddleware) Withdraw(req ChargeReq) (*decimal.Decimal, error) {
	return breakerExecute(c.brkrs.Write, func() (*decimal.Decimal, error) {
		return c.next.Withdraw(req)
	})
}

func (c *circuitBreakMiddleware) ApplyInterest(req InterestReq) (*decimal.Decimal, error) {
	return breakerExecute(c.brkrs.Write, func() (*decimal.Decimal, error) {
		return c.next.ApplyInterest(req)
	})
}

func (c *circuitBreakMiddleware) Statement(w io.Writer) error {
	_, err := breakerExecute(c.brkrs.Report, func() (struct{}, error) {
		return struct{}{}, c.next.Statement(w)
	})
	return err
}
