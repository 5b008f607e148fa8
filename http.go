package minibank

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/bwmarrin/snowflake"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	requestIDHeader = "X-Request-Id"
)

type balanceJSONResp struct {
	Balance decimal.Decimal `json:"balance"`
}

type listJSONResp struct {
	Accounts []Description `json:"accounts"`
}

func NewHTTPHandler(svc Service, log *zerolog.Logger, node *snowflake.Node) http.Handler {
	hndlr := &httpHandler{
		Svc: svc,
		Log: log,
	}
	mux := chi.NewMux()
	mux.Use(requestID(node))
	mux.NotFound(HTTPNotFound)
	mux.Route("/accounts", func(r chi.Router) {
		r.Get("/", hndlr.List)
		r.Post("/savings", hndlr.OpenSavings)
		r.Post("/checking", hndlr.OpenChecking)
		r.Get("/statement", hndlr.Statement)
		r.Route("/{acctID:[SC][0-9]+}", func(rr chi.Router) {
			rr.Get("/", hndlr.Describe)
			rr.Post("/deposit", hndlr.Deposit)
			rr.Post("/withdraw", hndlr.Withdraw)
			rr.Post("/interest", hndlr.ApplyInterest)
		})
	})

	return mux
}

// requestID tags every response with a snowflake id so log lines and client
// reports can be correlated.
func requestID(node *snowflake.Node) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(requestIDHeader, node.Generate().String())
			next.ServeHTTP(w, r)
		})
	}
}

type httpHandler struct {
	Svc Service
	Log *zerolog.Logger
}

func (h *httpHandler) decode(w http.ResponseWriter, r *http.Request, method string, v any) bool {
	buf, err := io.ReadAll(r.Body)
	defer r.Body.Close()
	if err != nil {
		h.Log.Err(err).Str("method", method).Msg("error reading HTTP request")
		WriteHTTPError(w, ErrInternalServer)
		return false
	}
	if err = json.Unmarshal(buf, v); err != nil {
		h.Log.Err(err).Str("method", method).Msg("error unmarshalling JSON")
		WriteHTTPError(w, ErrBadRequest{Fields: map[string]string{"request body": "malformed JSON"}})
		return false
	}
	return true
}

func (h *httpHandler) OpenSavings(w http.ResponseWriter, r *http.Request) {
	var req OpenSavingsReq
	if !h.decode(w, r, "open_savings", &req) {
		return
	}
	desc, err := h.Svc.OpenSavings(req)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, desc)
}

func (h *httpHandler) OpenChecking(w http.ResponseWriter, r *http.Request) {
	var req OpenCheckingReq
	if !h.decode(w, r, "open_checking", &req) {
		return
	}
	desc, err := h.Svc.OpenChecking(req)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, desc)
}

func (h *httpHandler) List(w http.ResponseWriter, r *http.Request) {
	descs, err := h.Svc.List()
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listJSONResp{Accounts: descs})
}

func (h *httpHandler) Describe(w http.ResponseWriter, r *http.Request) {
	req := DescribeReq{AcctID: chi.URLParam(r, "acctID")}
	desc, err := h.Svc.Describe(req)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, desc)
}

func (h *httpHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req ChargeReq
	if !h.decode(w, r, "deposit", &req) {
		return
	}
	req.AcctID = chi.URLParam(r, "acctID")
	bal, err := h.Svc.Deposit(req)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, balanceJSONResp{Balance: *bal})
}

func (h *httpHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req ChargeReq
	if !h.decode(w, r, "withdraw", &req) {
		return
	}
	req.AcctID = chi.URLParam(r, "acctID")
	bal, err := h.Svc.Withdraw(req)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, balanceJSONResp{Balance: *bal})
}

func (h *httpHandler) ApplyInterest(w http.ResponseWriter, r *http.Request) {
	req := InterestReq{AcctID: chi.URLParam(r, "acctID")}
	bal, err := h.Svc.ApplyInterest(req)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, balanceJSONResp{Balance: *bal})
}

func (h *httpHandler) Statement(w http.ResponseWriter, r *http.Request) {
	// buffered so that a failed render can still produce a JSON error
	buf := new(bytes.Buffer)
	if err := h.Svc.Statement(buf); err != nil {
		WriteHTTPError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	if _, err := buf.WriteTo(w); err != nil {
		h.Log.Err(err).Str("method", "statement").Msg("error writing statement")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().
			Err(err).
			Msg("response encoding failed")
	}
}

func WriteHTTPError(w http.ResponseWriter, err error) {
	var ne error
	defer func() {
		if ne != nil {
			log.Error().
				Err(ne).
				Msg("error response encoding failed")
		}
	}()

	w.Header().Set("Content-Type", "application/json")
	errnf := &ErrNotFound{}
	errbr := &ErrBadRequest{}
	erria := &ErrInvalidAmount{}
	errif := &ErrInsufficientFunds{}
	errkm := &ErrKindMismatch{}
	switch {
	case errors.As(err, errnf):
		w.WriteHeader(http.StatusNotFound)
		ne = json.NewEncoder(w).Encode(errnf)
	case errors.As(err, errbr):
		w.WriteHeader(http.StatusBadRequest)
		ne = json.NewEncoder(w).Encode(errbr)
	case errors.As(err, erria):
		w.WriteHeader(http.StatusBadRequest)
		ne = json.NewEncoder(w).Encode(errorJSONResp{Message: erria.Error(), Detail: erria})
	case errors.As(err, errif):
		w.WriteHeader(http.StatusConflict)
		ne = json.NewEncoder(w).Encode(errorJSONResp{Message: errif.Error(), Detail: errif})
	case errors.As(err, errkm):
		w.WriteHeader(http.StatusConflict)
		ne = json.NewEncoder(w).Encode(errorJSONResp{Message: errkm.Error(), Detail: errkm})
	case errors.Is(err, ErrServiceUnavailable):
		w.WriteHeader(http.StatusServiceUnavailable)
		ne = json.NewEncoder(w).Encode(errorJSONResp{Message: ErrServiceUnavailable.Error()})
	default:
		w.WriteHeader(http.StatusInternalServerError)
		ne = json.NewEncoder(w).Encode(errorJSONResp{Message: "server error"})
	}
}

type errorJSONResp struct {
	Message string `json:"message"`
	Detail  any    `json:"detail,omitempty"`
}

func HTTPNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	resp := map[string]string{
		"path": r.URL.Path,
	}
	json.NewEncoder(w).Encode(resp)
}
