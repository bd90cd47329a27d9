package chatService

import (
	"Fintar/internal/api/chat"
	"Fintar/internal/entity"
	"Fintar/pkg/completion"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

var errStoreDown = errors.New("store unavailable")

type fakeStore struct {
	saved  []entity.Transaction
	listed []entity.Transaction
	// failOn holds 1-based CreateTransaction call numbers that fail.
	failOn map[int]bool
	calls  int
	lists  int
}

func (f *fakeStore) CreateTransaction(_ context.Context, userID string, tx entity.Transaction) (entity.Transaction, error) {
	f.calls++
	if f.failOn[f.calls] {
		return nil, errStoreDown
	}
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	f.saved = append(f.saved, tx)
	return tx, nil
}

func (f *fakeStore) GetTransactions(_ context.Context, _ string) ([]entity.Transaction, error) {
	f.lists++
	return f.listed, nil
}

type fakeCompletion struct {
	reply    string
	err      error
	requests []completion.Request
}

func (f *fakeCompletion) Complete(_ context.Context, req completion.Request) (string, error) {
	f.requests = append(f.requests, req)
	return f.reply, f.err
}

func (f *fakeCompletion) Provider() string { return "fake" }
func (f *fakeCompletion) Model() string    { return "fake-model" }

// 19 Oct 2026 20:00 UTC is 20 Oct 2026 in Jakarta.
func testClock() time.Time {
	return time.Date(2026, time.October, 19, 20, 0, 0, 0, time.UTC)
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestService(t *testing.T, store *fakeStore, client completion.Client) *chatService {
	t.Helper()
	cfg := chat.DefaultConfig()
	svc := NewChatService(testLogger(), cfg, store, client, validator.New(), WithClock(testClock))
	return svc.(*chatService)
}

func civilDay(month time.Month, day int) time.Time {
	return time.Date(2026, month, day, 0, 0, 0, 0, time.UTC)
}
