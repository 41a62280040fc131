package respond

import (
	"encoding/json"
	"net/http"

	"github.com/wb-go/wbf/zlog"
)

type successResponse struct {
	Result any `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func write(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to encode response")
	}
}

// OK writes result with 200.
func OK(w http.ResponseWriter, result any) {
	write(w, http.StatusOK, successResponse{Result: result})
}

// Created writes result with 201.
func Created(w http.ResponseWriter, result any) {
	write(w, http.StatusCreated, successResponse{Result: result})
}

// Fail writes err as {"error": "..."} with the given status.
func Fail(w http.ResponseWriter, status int, err error) {
	write(w, status, errorResponse{Error: err.Error()})
}
