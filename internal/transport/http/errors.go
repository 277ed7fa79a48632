package http

import (
	"encoding/json"
	"net/http"

	"github.com/matuu/events-manager/internal/domain"
)

const (
	codeMethodNotAllowed   = "method_not_allowed"
	codeNotFound           = "not_found"
	codeInvalidRequestBody = "invalid_request_body"
	codeCallerRequired     = "caller_id_required"
	codeInvalidID          = "invalid_id"
	codeInvalidName        = "invalid_event_name"
	codeInvalidAmount      = "invalid_amount"
	codeAlreadyInitialized = "already_initialized"
	codeUnauthorized       = "unauthorized"
	codeEventClosed        = "event_closed"
	codeInsufficientFunds  = "insufficient_funds"
	codeArithmeticOverflow = "arithmetic_overflow"
	codeNoClaim            = "no_claim"
	codeEventNotFound      = "event_not_found"
	codeAssetNotFound      = "asset_not_found"
	codeForbidden          = "forbidden"
	codeInternalError      = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}

// writeDomainError maps a service error onto its stable code and status.
func writeDomainError(w http.ResponseWriter, err error) {
	switch err {
	case domain.ErrInvalidAmount, domain.ErrArithmeticOverflow, domain.ErrInvalidName, domain.ErrInvalidID:
		writeError(w, http.StatusBadRequest, domainCode(err), err.Error())
	case domain.ErrUnauthorized:
		writeError(w, http.StatusForbidden, codeUnauthorized, err.Error())
	case domain.ErrEventNotFound, domain.ErrAssetNotFound, domain.ErrAccountNotFound:
		writeError(w, http.StatusNotFound, domainCode(err), err.Error())
	case domain.ErrAlreadyInitialized, domain.ErrEventClosed, domain.ErrInsufficientFunds, domain.ErrNoClaim:
		writeError(w, http.StatusConflict, domainCode(err), err.Error())
	default:
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

func domainCode(err error) string {
	switch err {
	case domain.ErrAlreadyInitialized:
		return codeAlreadyInitialized
	case domain.ErrUnauthorized:
		return codeUnauthorized
	case domain.ErrEventClosed:
		return codeEventClosed
	case domain.ErrInsufficientFunds:
		return codeInsufficientFunds
	case domain.ErrArithmeticOverflow:
		return codeArithmeticOverflow
	case domain.ErrInvalidAmount:
		return codeInvalidAmount
	case domain.ErrInvalidName:
		return codeInvalidName
	case domain.ErrNoClaim:
		return codeNoClaim
	case domain.ErrEventNotFound:
		return codeEventNotFound
	case domain.ErrAssetNotFound, domain.ErrAccountNotFound:
		return codeAssetNotFound
	case domain.ErrInvalidID:
		return codeInvalidID
	default:
		return codeInternalError
	}
}
