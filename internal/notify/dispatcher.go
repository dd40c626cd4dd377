package notify

import (
	"context"
	"log"
)

// Dispatcher enfileira mensagens e entrega em background. Fila cheia
// descarta: aviso é melhor-esforço e nunca bloqueia a operação.
type Dispatcher struct {
	notifier Notifier
	queue    chan Message
}

func NewDispatcher(notifier Notifier) *Dispatcher {
	d := &Dispatcher{
		notifier: notifier,
		queue:    make(chan Message, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for msg := range d.queue {
		if err := d.notifier.Notify(context.Background(), msg); err != nil {
			log.Println("notify error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(msg Message) {
	select {
	case d.queue <- msg:
	default:
		log.Println("notify queue full, dropping message")
	}
}
