package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/domvailm/barber-ledger/internal/config"
	infraRepo "github.com/domvailm/barber-ledger/internal/infra/repository"
	"github.com/domvailm/barber-ledger/internal/kv"
	"github.com/domvailm/barber-ledger/internal/notify"
	"github.com/domvailm/barber-ledger/internal/timezone"
	ucFinance "github.com/domvailm/barber-ledger/internal/usecase/finance"
)

func main() {
	log.Println("Starting reminder worker...")

	_ = godotenv.Load()

	cfg := config.Load()

	store, err := kv.Open(cfg.KVBackend, cfg.DataDir, cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("failed to open kv store: %v", err)
	}

	repo := infraRepo.NewAppointmentKVStore(store)
	remindersUC := ucFinance.NewDueReminders(repo)
	dispatcher := notify.NewDispatcher(notify.LogNotifier{})

	// Dedup em memória: um lembrete por agendamento enquanto o worker
	// viver. Reinício pode repetir; entrega é melhor-esforço.
	notified := make(map[string]bool)

	c := cron.New(cron.WithSeconds())

	_, err = c.AddFunc(cfg.ReminderSpec, func() {
		due, err := remindersUC.Execute(context.Background(), timezone.NowIn(cfg.Timezone))
		if err != nil {
			log.Printf("reminder check failed: %v", err)
			return
		}

		for _, ap := range due {
			if notified[ap.ID] {
				continue
			}
			notified[ap.ID] = true

			dispatcher.Dispatch(notify.Message{
				Title: "Lembrete de horário",
				Body: fmt.Sprintf("%s tem horário marcado em %s às %s.",
					ap.CustomerName, ap.Date, ap.Time),
			})
		}
	})
	if err != nil {
		log.Fatalf("failed to schedule reminder job: %v", err)
	}

	c.Start()
	log.Println("Reminder worker started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down reminder worker...")
	c.Stop()
	log.Println("Reminder worker stopped")
}
