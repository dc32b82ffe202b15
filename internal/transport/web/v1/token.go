package v1

import (
	"encoding/base64"
	"net/http"
	"strings"
)

// XToken извлекает сессионный токен; "" — заголовка нет.
func XToken(r *http.Request) string {
	return r.Header.Get("X-Token")
}

// BasicCreds — разобранный бутстрап-креденшл для /connect.
type BasicCreds struct {
	Email    string
	Password string
}

// BasicCredsFromRequest разбирает Authorization: <scheme> base64(email:password).
// Формат жёсткий: ровно две части через пробел, в декодированном виде ровно
// один ":", обе половины непустые. Любое нарушение — nil.
func BasicCredsFromRequest(r *http.Request) *BasicCreds {
	h := r.Header.Get("Authorization")
	if h == "" {
		return nil
	}
	parts := strings.Split(h, " ")
	if len(parts) != 2 {
		return nil
	}
	decoded, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil
	}
	if strings.Count(string(decoded), ":") != 1 {
		return nil
	}
	email, pswd, _ := strings.Cut(string(decoded), ":")
	if email == "" || pswd == "" {
		return nil
	}
	return &BasicCreds{Email: email, Password: pswd}
}
