package audit

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/domvailm/barber-ledger/internal/kv"
)

const auditKey = "audit_logs"

type Entry struct {
	ID       string `json:"id"`
	Action   string `json:"action"`
	Entity   string `json:"entity"`
	EntityID string `json:"entity_id,omitempty"`
	Metadata string `json:"metadata,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Logger grava a trilha de auditoria como uma coleção append-only no
// mesmo armazenamento chave-valor das entidades.
type Logger struct {
	kv kv.Store
	mu sync.Mutex
}

func New(store kv.Store) *Logger {
	return &Logger{kv: store}
}

func (l *Logger) Log(ctx context.Context, action, entity, entityID string, metadata any) error {
	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entries := l.load(ctx)
	entries = append(entries, Entry{
		ID:        uuid.NewString(),
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Metadata:  metaJSON,
		CreatedAt: time.Now(),
	})

	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return l.kv.Put(ctx, auditKey, raw)
}

func (l *Logger) List(ctx context.Context) ([]Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load(ctx), nil
}

func (l *Logger) load(ctx context.Context) []Entry {
	raw, err := l.kv.Get(ctx, auditKey)
	if err == kv.ErrNotFound {
		return nil
	}
	if err != nil {
		log.Printf("audit: unreadable trail, starting empty: %v", err)
		return nil
	}

	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		log.Printf("audit: corrupt trail, starting empty: %v", err)
		return nil
	}
	return entries
}
