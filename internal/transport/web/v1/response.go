package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/EgorLis/file-vault/internal/domain"
)

// Тип ошибочного ответа фиксирован контрактом: {"error": "<text>"}
type errBody struct {
	Error string `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func WriteError(w http.ResponseWriter, status int, text string) {
	WriteJSON(w, status, errBody{Error: text})
}

// WriteDomainError решает HTTP-статус + текст по доменной ошибке.
func WriteDomainError(w http.ResponseWriter, err error) {
	var ve domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrUnauth):
		// все причины отказа в авторизации неразличимы снаружи
		WriteError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.As(err, &ve):
		WriteError(w, http.StatusBadRequest, ve.Error())
	case errors.Is(err, domain.ErrNotFound):
		WriteError(w, http.StatusNotFound, "Not found")
	default:
		// инфраструктурный сбой: единственный класс, который отдаём как 500
		WriteError(w, http.StatusInternalServerError, err.Error())
	}
}
