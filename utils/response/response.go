// Package response writes the uniform JSON envelope used by every endpoint.
package response

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/muhammadheryan/bhrc-portal/constant"
	"github.com/muhammadheryan/bhrc-portal/model"
	"github.com/muhammadheryan/bhrc-portal/utils/errors"
	"github.com/muhammadheryan/bhrc-portal/utils/logger"
	"go.uber.org/zap"
)

type Envelope struct {
	Success    bool                  `json:"success"`
	Message    string                `json:"message,omitempty"`
	Code       string                `json:"code,omitempty"`
	Data       any                   `json:"data,omitempty"`
	Errors     []errors.FieldError   `json:"errors,omitempty"`
	Pagination *model.PaginationMeta `json:"pagination,omitempty"`
}

// JSON writes env with status; Success is derived from status so the two never disagree.
func JSON(w http.ResponseWriter, status int, env Envelope) {
	env.Success = status >= 200 && status < 300
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		logger.Error("[response.JSON] encode", zap.String("error", err.Error()))
	}
}

func Success(w http.ResponseWriter, data any, message string) {
	JSON(w, http.StatusOK, Envelope{Message: message, Data: data})
}

func Created(w http.ResponseWriter, data any, message string) {
	JSON(w, http.StatusCreated, Envelope{Message: message, Data: data})
}

func Paginated(w http.ResponseWriter, data any, meta model.PaginationMeta, message string) {
	JSON(w, http.StatusOK, Envelope{Message: message, Data: data, Pagination: &meta})
}

func ValidationError(w http.ResponseWriter, fields []errors.FieldError) {
	JSON(w, http.StatusBadRequest, Envelope{
		Message: constant.ErrorTypeMessage[constant.ErrValidation],
		Code:    constant.ErrorTypeCode[constant.ErrValidation],
		Errors:  fields,
	})
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = constant.ErrorTypeMessage[constant.ErrUnauthorize]
	}
	JSON(w, http.StatusUnauthorized, Envelope{Message: message, Code: constant.ErrorTypeCode[constant.ErrUnauthorize]})
}

func Forbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = constant.ErrorTypeMessage[constant.ErrForbidden]
	}
	JSON(w, http.StatusForbidden, Envelope{Message: message, Code: constant.ErrorTypeCode[constant.ErrForbidden]})
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = constant.ErrorTypeMessage[constant.ErrNotFound]
	}
	JSON(w, http.StatusNotFound, Envelope{Message: message, Code: constant.ErrorTypeCode[constant.ErrNotFound]})
}

// ServerError never exposes the underlying error to the client.
func ServerError(w http.ResponseWriter) {
	JSON(w, http.StatusInternalServerError, Envelope{
		Message: constant.ErrorTypeMessage[constant.ErrInternal],
		Code:    constant.ErrorTypeCode[constant.ErrInternal],
	})
}

// Error maps err onto the envelope. Errors that are not CustomError become a generic 500.
func Error(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if !stderrors.As(err, &ce) {
		logger.Error("[response.Error] unexpected error", zap.String("error", err.Error()))
		ServerError(w)
		return
	}

	env := Envelope{
		Message: ce.Error(),
		Code:    ce.ErrorCode(),
		Errors:  ce.Fields(),
	}
	if meta := ce.Meta(); len(meta) > 0 {
		env.Data = meta
	}
	JSON(w, ce.ErrorHTTPCode(), env)
}
