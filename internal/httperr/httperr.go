package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ===============================
// Business errors (domínio)
// ===============================

// Códigos usados pelo núcleo de agendamento e pelo livro-caixa.
const (
	CodeSlotTaken            = "slot_taken"
	CodeInvalidState         = "invalid_state"
	CodeInvalidPaymentMethod = "invalid_payment_method"
	CodeMisalignedTime       = "misaligned_time"
	CodeOutsideBusinessHours = "outside_business_hours"
	CodeTooSoon              = "too_soon"
	CodeServiceNotFound      = "service_not_found"
	CodeAppointmentNotFound  = "appointment_not_found"
	CodeExpenseNotFound      = "expense_not_found"
	CodeInvalidAmount        = "invalid_amount"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extrai o código de um BusinessError, ou "" se não for um.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

// ===============================
// HTTP writers
// ===============================

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}
