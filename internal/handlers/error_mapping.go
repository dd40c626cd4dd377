package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/domvailm/barber-ledger/internal/httperr"
)

// Mensagens por código de negócio, na língua da casa.
var businessMessages = map[string]string{
	httperr.CodeSlotTaken:            "Horário já reservado.",
	httperr.CodeInvalidState:         "Agendamento não permite essa operação.",
	httperr.CodeInvalidPaymentMethod: "Método de pagamento inválido.",
	httperr.CodeMisalignedTime:       "Horário fora da grade de slots.",
	httperr.CodeOutsideBusinessHours: "Fora do horário de atendimento.",
	httperr.CodeTooSoon:              "Horário inválido.",
	httperr.CodeServiceNotFound:      "Serviço não encontrado.",
	httperr.CodeAppointmentNotFound:  "Agendamento não encontrado.",
	httperr.CodeExpenseNotFound:      "Despesa não encontrada.",
	httperr.CodeInvalidAmount:        "Valor deve ser positivo.",
	"invalid_date_or_time":           "Data ou hora inválida.",
	"invalid_request":                "Dados inválidos.",
}

// writeError traduz o erro de domínio para a resposta HTTP: conflito
// vira 409, não-encontrado 404, validação 400 e o resto 500 (falha de
// persistência incluída, para o chamador não assumir que gravou).
func writeError(c *gin.Context, err error) {
	code := httperr.BusinessCode(err)
	msg := businessMessages[code]

	switch code {
	case httperr.CodeSlotTaken, httperr.CodeInvalidState, httperr.CodeInvalidPaymentMethod:
		httperr.Conflict(c, code, msg)
	case httperr.CodeAppointmentNotFound, httperr.CodeExpenseNotFound:
		httperr.NotFound(c, code, msg)
	case "":
		httperr.Internal(c, "persistence_failed", "Não foi possível gravar a operação.")
	default:
		httperr.BadRequest(c, code, msg)
	}
}
