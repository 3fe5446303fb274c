// file: internals/features/absensi/stream/hub.go
package stream

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

// Pengganti onSnapshot: setiap write sukses di-publish ke semua
// subscriber pada namespace user yang sama. Satu event = satu perubahan,
// urut per subscriber; teardown eksplisit lewat Unsubscribe.

const (
	CollClasses    = "classes"
	CollStudents   = "students"
	CollAttendance = "attendance"
)

const (
	ActionCreated  = "created"
	ActionUpdated  = "updated"
	ActionDeleted  = "deleted"
	ActionReplaced = "replaced" // saveDay: isi hari diganti utuh
)

type Event struct {
	Collection string    `json:"collection"`
	Action     string    `json:"action"`
	UserID     uuid.UUID `json:"-"`
	Data       any       `json:"data,omitempty"`
}

type Subscriber struct {
	C      <-chan Event
	hub    *Hub
	userID uuid.UUID
	ch     chan Event
	closed bool
}

// Unsubscribe melepas subscriber dan menutup channel-nya. Aman dipanggil
// lebih dari sekali.
func (s *Subscriber) Unsubscribe() {
	s.hub.remove(s)
}

type Hub struct {
	mu     sync.Mutex
	subs   map[uuid.UUID]map[*Subscriber]struct{}
	closed bool
}

func NewHub() *Hub {
	return &Hub{subs: make(map[uuid.UUID]map[*Subscriber]struct{})}
}

// Subscribe mendaftarkan listener untuk satu namespace user.
func (h *Hub) Subscribe(userID uuid.UUID) *Subscriber {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub := &Subscriber{hub: h, userID: userID, ch: make(chan Event, 64)}
	sub.C = sub.ch
	if h.closed {
		sub.closed = true
		close(sub.ch)
		return sub
	}
	set, ok := h.subs[userID]
	if !ok {
		set = make(map[*Subscriber]struct{})
		h.subs[userID] = set
	}
	set[sub] = struct{}{}
	return sub
}

// Publish mengantarkan event ke semua subscriber namespace terkait.
// Subscriber yang buffernya penuh dianggap macet: ditutup dan dilepas,
// bukan event-nya yang dibuang diam-diam.
func (h *Hub) Publish(evt Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	for sub := range h.subs[evt.UserID] {
		select {
		case sub.ch <- evt:
		default:
			log.Printf("[WARN] stream: subscriber user=%s macet, dilepas", evt.UserID)
			h.removeLocked(sub)
		}
	}
}

// Close menutup hub dan semua subscriber (dipakai saat shutdown).
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for _, set := range h.subs {
		for sub := range set {
			if !sub.closed {
				sub.closed = true
				close(sub.ch)
			}
		}
	}
	h.subs = make(map[uuid.UUID]map[*Subscriber]struct{})
}

func (h *Hub) remove(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(sub)
}

func (h *Hub) removeLocked(sub *Subscriber) {
	if set, ok := h.subs[sub.userID]; ok {
		if _, ok := set[sub]; ok {
			delete(set, sub)
			if len(set) == 0 {
				delete(h.subs, sub.userID)
			}
		}
	}
	if !sub.closed {
		sub.closed = true
		close(sub.ch)
	}
}
