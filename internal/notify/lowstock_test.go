package notify_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/devicepro80/dhstore/internal/models"
	"github.com/devicepro80/dhstore/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubItems struct {
	item *models.Item
	err  error
}

func (s stubItems) GetByID(uint) (*models.Item, error) { return s.item, s.err }

type recordingMailer struct {
	mu       sync.Mutex
	subjects []string
	err      error
}

func (m *recordingMailer) Send(subject, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subjects = append(m.subjects, subject)
	return m.err
}

func (m *recordingMailer) sent() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.subjects...)
}

func TestNotifiesWhenAtOrBelowReorderLevel(t *testing.T) {
	mailer := &recordingMailer{}
	svc := notify.NewService(stubItems{
		item: &models.Item{ID: 3, Name: "Black Tea 250g", Quantity: 5, ReorderLevel: 10},
	}, mailer)

	svc.Enqueue(3)
	svc.Close()

	require.Len(t, mailer.sent(), 1)
	assert.Equal(t, "Low stock alert: Black Tea 250g", mailer.sent()[0])
}

func TestNoNotificationAboveReorderLevel(t *testing.T) {
	mailer := &recordingMailer{}
	svc := notify.NewService(stubItems{
		item: &models.Item{ID: 3, Name: "Black Tea 250g", Quantity: 11, ReorderLevel: 10},
	}, mailer)

	svc.Enqueue(3)
	svc.Close()

	assert.Empty(t, mailer.sent())
}

func TestMailerFailureIsSwallowed(t *testing.T) {
	mailer := &recordingMailer{err: errors.New("smtp down")}
	svc := notify.NewService(stubItems{
		item: &models.Item{ID: 3, Name: "Black Tea 250g", Quantity: 0, ReorderLevel: 10},
	}, mailer)

	// Must not panic or propagate; the triggering request already
	// returned by the time delivery fails.
	svc.Enqueue(3)
	svc.Close()

	assert.Len(t, mailer.sent(), 1)
}

func TestNilMailerIsSilentNoOp(t *testing.T) {
	svc := notify.NewService(stubItems{
		item: &models.Item{ID: 3, Quantity: 0, ReorderLevel: 10},
	}, nil)

	svc.Enqueue(3)
	svc.Close()
}

func TestUnconfiguredMailerEnvIsSilentNoOp(t *testing.T) {
	// Without SMTP_HOST the constructor must yield a mailer the
	// service recognizes as absent, so a low-stock event is a no-op
	// instead of a nil-receiver call in the worker.
	t.Setenv("SMTP_HOST", "")

	mailer := notify.NewSMTPMailerFromEnv()
	require.Nil(t, mailer)

	svc := notify.NewService(stubItems{
		item: &models.Item{ID: 3, Name: "Black Tea 250g", Quantity: 5, ReorderLevel: 10},
	}, mailer)

	svc.Enqueue(3)
	svc.Close()
}

func TestEnqueueAfterCloseIsDropped(t *testing.T) {
	mailer := &recordingMailer{}
	svc := notify.NewService(stubItems{
		item: &models.Item{ID: 3, Name: "Black Tea 250g", Quantity: 5, ReorderLevel: 10},
	}, mailer)

	svc.Close()
	svc.Enqueue(3)
	svc.Close()

	assert.Empty(t, mailer.sent())
}

func TestItemLoadFailureIsSwallowed(t *testing.T) {
	mailer := &recordingMailer{}
	svc := notify.NewService(stubItems{err: errors.New("db down")}, mailer)

	svc.Enqueue(3)
	svc.Close()

	assert.Empty(t, mailer.sent())
}
