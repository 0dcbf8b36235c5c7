package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/niklvrr/DevProjects/internal/usecase/service"
)

// ErrIDOutOfRange идентификатор записан корректно, но не помещается в INTEGER ключа.
// Строки с таким id в бд быть не может.
var ErrIDOutOfRange = errors.New("id out of range")

// decodeBody разбирает json тело запроса. Неизвестные ключи - ошибка валидации.
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return &service.DomainError{
			Code:    service.ErrInvalidInput.Code,
			Message: fmt.Sprintf("invalid request body: %v", err),
			Err:     err,
		}
	}
	return nil
}

// PathID читает числовой идентификатор из параметра пути. Ключи в бд - INTEGER,
// поэтому значения больше MaxInt32 отклоняются с ErrIDOutOfRange в цепочке.
func PathID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 32)
	if err == nil && id > 0 {
		return id, nil
	}

	if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(raw, "-") {
		err = ErrIDOutOfRange
	}
	return 0, &service.DomainError{
		Code:    service.ErrInvalidInput.Code,
		Message: fmt.Sprintf("invalid %s: %q", param, raw),
		Err:     err,
	}
}
