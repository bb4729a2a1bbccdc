package realtime

import "sync"

// Event is a table-level change notification. It carries no row payload;
// consumers are expected to refetch the affected table.
type Event struct {
	Type   string `json:"type"`
	Table  string `json:"table"`
	Action string `json:"action,omitempty"`
	ID     uint   `json:"id,omitempty"`
}

const (
	EventChange = "change"

	ActionInsert = "INSERT"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

// Notifier is the mutation-side view of the hub.
type Notifier interface {
	Notify(table, action string, id uint)
}

// Hub fans table change events out to subscribers. Both the WebSocket
// transport and in-process consumers register through Subscribe.
type Hub struct {
	mu   sync.RWMutex
	next int
	subs map[string]map[int]func(Event)
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[int]func(Event))}
}

// Subscribe registers fn for every change on table and returns an
// unsubscribe func. Unsubscribing twice is a no-op.
func (h *Hub) Subscribe(table string, fn func(Event)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.subs[table] == nil {
		h.subs[table] = make(map[int]func(Event))
	}
	h.next++
	token := h.next
	h.subs[table][token] = fn

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if m, ok := h.subs[table]; ok {
			delete(m, token)
			if len(m) == 0 {
				delete(h.subs, table)
			}
		}
	}
}

// Notify delivers a change event to every subscriber of table. Events are
// not sequenced or coalesced: a refetch triggered by one may race a
// user-initiated mutation in flight, and the last fetch to resolve wins.
func (h *Hub) Notify(table, action string, id uint) {
	ev := Event{Type: EventChange, Table: table, Action: action, ID: id}

	h.mu.RLock()
	fns := make([]func(Event), 0, len(h.subs[table]))
	for _, fn := range h.subs[table] {
		fns = append(fns, fn)
	}
	h.mu.RUnlock()

	// Invoke outside the lock so a callback may unsubscribe.
	for _, fn := range fns {
		fn(ev)
	}
}

// SubscriberCount reports active subscriptions for table.
func (h *Hub) SubscriberCount(table string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[table])
}
