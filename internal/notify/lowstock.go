package notify

import (
	"fmt"
	"log"
	"sync"

	"github.com/devicepro80/dhstore/internal/models"
)

// ItemSource is the narrow read the notifier needs; satisfied by
// stores.ItemStore.
type ItemSource interface {
	GetByID(id uint) (*models.Item, error)
}

// Service watches for post-commit low-stock events. Recorders enqueue
// the affected item after their transaction commits; a background worker
// re-reads the item and emails an alert when it sits at or below its
// reorder level. Delivery failures are logged and swallowed, never
// surfaced to the request that triggered them.
type Service struct {
	items  ItemSource
	mailer Mailer
	queue  chan uint
	done   chan struct{}

	mu     sync.Mutex
	closed bool
}

// NewService starts the notifier worker. A nil mailer disables delivery
// but keeps the queue draining.
func NewService(items ItemSource, mailer Mailer) *Service {
	s := &Service{
		items:  items,
		mailer: mailer,
		queue:  make(chan uint, 64),
		done:   make(chan struct{}),
	}
	go s.loop()
	return s
}

// Enqueue hands an item to the worker. Never blocks the caller and
// never panics: events arriving when the queue is full or after Close
// are dropped with a log line.
func (s *Service) Enqueue(itemID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		log.Printf("low-stock notifier closed, dropping event for item %d", itemID)
		return
	}
	select {
	case s.queue <- itemID:
	default:
		log.Printf("low-stock queue full, dropping event for item %d", itemID)
	}
}

// Close stops the worker after draining queued events. Safe to call
// more than once.
func (s *Service) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.queue)
	s.mu.Unlock()
	<-s.done
}

func (s *Service) loop() {
	defer close(s.done)
	for itemID := range s.queue {
		s.check(itemID)
	}
}

func (s *Service) check(itemID uint) {
	item, err := s.items.GetByID(itemID)
	if err != nil {
		log.Printf("low-stock check: could not load item %d: %v", itemID, err)
		return
	}
	if !item.LowOnStock() {
		return
	}
	if s.mailer == nil {
		return
	}

	subject := fmt.Sprintf("Low stock alert: %s", item.Name)
	body := fmt.Sprintf(
		"<p><b>%s</b> has low stock.</p><p>Qty: %d (reorder level: %d)</p><p>DH Store Inventory System</p>",
		item.Name, item.Quantity, item.ReorderLevel,
	)
	if err := s.mailer.Send(subject, body); err != nil {
		log.Printf("low-stock alert for item %d failed: %v", itemID, err)
	}
}
