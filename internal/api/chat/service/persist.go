package chatService

import (
	"Fintar/internal/api/chat"
	"Fintar/internal/entity"
	contextPkg "Fintar/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// persist stores transactions one after another. A failure does not stop
// the rest of the batch and nothing already stored is undone.
func (s *chatService) persist(ctx context.Context, userID string, transactions []entity.Transaction) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	stored := make([]entity.Transaction, 0, len(transactions))
	var (
		failed   int
		firstErr error
	)

	for _, tx := range transactions {
		saved, err := s.store.CreateTransaction(ctx, userID, tx)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"type":       tx.Kind(),
				"error":      err.Error(),
			}).Error("Failed to persist transaction")
			failed++
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		stored = append(stored, saved)
	}

	if failed > 0 {
		return stored, &chat.PersistError{
			Persisted: len(stored),
			Failed:    failed,
			Err:       firstErr,
		}
	}

	return stored, nil
}
