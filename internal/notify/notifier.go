// Package notify entrega avisos de saída (novo agendamento, lembrete
// de horário). A entrega em si é colaborador externo: o engine não
// depende do sucesso dela.
package notify

import (
	"context"
	"log"
)

type Message struct {
	Title string
	Body  string
}

type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}

// LogNotifier é a implementação padrão: só registra no log.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, msg Message) error {
	log.Printf("notify: %s: %s", msg.Title, msg.Body)
	return nil
}
