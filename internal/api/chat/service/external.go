package chatService

import (
	"Fintar/internal/api/chat"
	"Fintar/internal/entity"
	"Fintar/pkg/completion"
	contextPkg "Fintar/pkg/context"
	"Fintar/pkg/nlp"
	"bytes"
	"errors"
	"fmt"
	"math"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

var errInvalidCandidate = errors.New("invalid transaction candidate")

var (
	minFlexAmount = decimal.NewFromInt(math.MinInt64)
	maxFlexAmount = decimal.NewFromInt(math.MaxInt64)
)

// flexAmount accepts 25000, 25000.4 and "25rb" alike.
type flexAmount int64

func (a *flexAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := jsoniter.Unmarshal(data, &raw); err != nil {
			return err
		}
		amount, err := nlp.NormalizeAmount(raw)
		if err != nil {
			return err
		}
		*a = flexAmount(amount)
		return nil
	}

	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return err
	}
	d = d.Round(0)
	if d.LessThan(minFlexAmount) || d.GreaterThan(maxFlexAmount) {
		return nlp.ErrUnparseableAmount
	}
	*a = flexAmount(d.IntPart())
	return nil
}

type candidateHeader struct {
	Type string `json:"type"`
}

type expenseCandidate struct {
	Amount      flexAmount `json:"amount" validate:"gt=0"`
	Category    string     `json:"category" validate:"required,oneof=food transport shopping bills entertainment health education other"`
	Description string     `json:"description" validate:"required"`
	Date        string     `json:"date" validate:"required,datetime=2006-01-02"`
}

type incomeCandidate struct {
	Amount      flexAmount `json:"amount" validate:"gt=0"`
	Category    string     `json:"category" validate:"required,oneof=salary freelance business investment other"`
	Description string     `json:"description" validate:"required"`
	Date        string     `json:"date" validate:"required,datetime=2006-01-02"`
}

type assetCandidate struct {
	Name          string      `json:"name" validate:"required"`
	Description   string      `json:"description"`
	PurchasePrice flexAmount  `json:"purchasePrice" validate:"gt=0"`
	CurrentValue  *flexAmount `json:"currentValue" validate:"omitempty,gte=0"`
	Date          string      `json:"date" validate:"required,datetime=2006-01-02"`
}

type completionEnvelope struct {
	Message         string                `json:"message"`
	HasTransactions bool                  `json:"hasTransactions"`
	Transactions    []jsoniter.RawMessage `json:"transactions"`
}

func (s *chatService) externalExtraction(ctx context.Context, in stageInput) (*chat.MessageResult, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if s.completion == nil {
		return nil, chat.ErrCompletionDisabled
	}

	c, cancel := context.WithTimeout(ctx, s.cfg.CompletionTimeout)
	defer cancel()

	reply, err := s.completion.Complete(c, completion.Request{
		SystemPrompt: systemPrompt(s.resolver.Today()),
		UserMessage:  in.message,
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"provider":   s.completion.Provider(),
			"model":      s.completion.Model(),
			"error":      err.Error(),
		}).Error("Completion request failed")
		return nil, fmt.Errorf("%w: %w", chat.ErrCompletionService, err)
	}

	return s.interpretReply(ctx, in.userID, reply)
}

// interpretReply turns a completion reply into a result. Unparseable replies
// degrade to conversation; only store failures are returned as errors.
func (s *chatService) interpretReply(ctx context.Context, userID, reply string) (*chat.MessageResult, error) {
	requestID := contextPkg.GetRequestID(ctx)
	reply = strings.TrimSpace(reply)

	fields, raw, ok := s.decodeObject(reply)
	if !ok {
		if len(raw) == 0 {
			return chat.Conversation(reply), nil
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Completion reply carries broken JSON")
		return chat.Conversation(msgBrokenJSON), nil
	}

	if _, present := fields["hasTransactions"]; present {
		var envelope completionEnvelope
		if err := s.json.Unmarshal(raw, &envelope); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Completion envelope has unexpected field types")
			return chat.Conversation(msgBrokenJSON), nil
		}

		if !envelope.HasTransactions {
			message := strings.TrimSpace(envelope.Message)
			if message == "" {
				message = msgNoJSON
			}
			return chat.Conversation(message), nil
		}

		if envelope.Transactions != nil {
			return s.persistCandidates(ctx, userID, envelope)
		}
	}

	tx, err := s.candidate(raw)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Completion reply is not a transaction")
		return chat.Conversation(msgUnderstandFailed), nil
	}

	persisted, err := s.persist(ctx, userID, []entity.Transaction{tx})
	if err != nil {
		return nil, err
	}
	return chat.Confirmation(confirmationFor(persisted), len(persisted)), nil
}

func (s *chatService) persistCandidates(ctx context.Context, userID string, envelope completionEnvelope) (*chat.MessageResult, error) {
	requestID := contextPkg.GetRequestID(ctx)

	valid := make([]entity.Transaction, 0, len(envelope.Transactions))
	for i, raw := range envelope.Transactions {
		tx, err := s.candidate(raw)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"index":      i,
				"error":      err.Error(),
			}).Warn("Dropping invalid transaction candidate")
			continue
		}
		valid = append(valid, tx)
	}

	if len(valid) == 0 {
		return chat.Conversation(msgNoValidCandidate), nil
	}

	persisted, err := s.persist(ctx, userID, valid)
	if err != nil {
		return nil, err
	}

	message := strings.TrimSpace(envelope.Message)
	if message == "" {
		message = confirmationFor(persisted)
	}
	return chat.Confirmation(message, len(persisted)), nil
}

// decodeObject parses reply as a JSON object, retrying on the outermost
// brace-delimited substring. raw is empty when the reply has no braces.
func (s *chatService) decodeObject(reply string) (map[string]jsoniter.RawMessage, []byte, bool) {
	var fields map[string]jsoniter.RawMessage
	if err := s.json.Unmarshal([]byte(reply), &fields); err == nil && fields != nil {
		return fields, []byte(reply), true
	}

	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end <= start {
		return nil, nil, false
	}

	raw := []byte(reply[start : end+1])
	fields = nil
	if err := s.json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil, raw, false
	}
	return fields, raw, true
}

// candidate validates one transaction object against the schema of its type.
func (s *chatService) candidate(raw []byte) (entity.Transaction, error) {
	tx, err := s.buildCandidate(raw)
	if err != nil {
		return nil, err
	}
	if err := tx.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidCandidate, err)
	}
	return tx, nil
}

func (s *chatService) buildCandidate(raw []byte) (entity.Transaction, error) {
	var header candidateHeader
	if err := s.json.Unmarshal(raw, &header); err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidCandidate, err)
	}

	switch entity.TransactionType(strings.ToLower(strings.TrimSpace(header.Type))) {
	case entity.TransactionTypeExpense:
		var c expenseCandidate
		if err := s.decodeCandidate(raw, &c, &c.Category); err != nil {
			return nil, err
		}
		date, _ := entity.ParseCivilDate(c.Date)
		return &entity.Expense{
			Amount:      int64(c.Amount),
			Category:    entity.ExpenseCategory(c.Category),
			Description: strings.TrimSpace(c.Description),
			Date:        date,
		}, nil

	case entity.TransactionTypeIncome:
		var c incomeCandidate
		if err := s.decodeCandidate(raw, &c, &c.Category); err != nil {
			return nil, err
		}
		date, _ := entity.ParseCivilDate(c.Date)
		return &entity.Income{
			Amount:      int64(c.Amount),
			Category:    entity.IncomeCategory(c.Category),
			Description: strings.TrimSpace(c.Description),
			Date:        date,
		}, nil

	case entity.TransactionTypeAsset:
		var c assetCandidate
		if err := s.decodeCandidate(raw, &c, nil); err != nil {
			return nil, err
		}
		date, _ := entity.ParseCivilDate(c.Date)
		name := strings.TrimSpace(c.Name)

		// The model sometimes files fuel or food as an asset.
		if s.classifier.IsConsumable(name + " " + c.Description) {
			return &entity.Expense{
				Amount:      int64(c.PurchasePrice),
				Category:    s.vocab.GuessExpenseCategory(name),
				Description: name,
				Date:        date,
			}, nil
		}

		asset := entity.NewAsset(name, int64(c.PurchasePrice), date)
		asset.Description = strings.TrimSpace(c.Description)
		if c.CurrentValue != nil {
			asset.CurrentValue = int64(*c.CurrentValue)
		}
		return asset, nil

	default:
		return nil, fmt.Errorf("%w: unknown type %q", errInvalidCandidate, header.Type)
	}
}

func (s *chatService) decodeCandidate(raw []byte, dst interface{}, category *string) error {
	if err := s.json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %w", errInvalidCandidate, err)
	}
	if category != nil {
		*category = strings.ToLower(strings.TrimSpace(*category))
	}
	if err := s.validator.Struct(dst); err != nil {
		return fmt.Errorf("%w: %w", errInvalidCandidate, err)
	}
	return nil
}
