package chatService

import (
	"Fintar/internal/api/chat"
	contextPkg "Fintar/pkg/context"
	"Fintar/pkg/nlp"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	StageNumericOnlyClarify = "numeric_only_clarify"
	StageAssetFAQ           = "asset_faq"
	StageSimpleExtraction   = "simple_extraction"
	StageRangeQuery         = "range_query"
	StageExternalExtraction = "external_extraction"
)

// declined is how a stage says the message is not for it. The router moves
// on to the next stage.
type declined struct {
	reason string
}

func (d declined) Error() string { return "declined: " + d.reason }

func decline(reason string) error {
	return declined{reason: reason}
}

type stageInput struct {
	userID  string
	message string
}

type stage struct {
	name string
	run  func(ctx context.Context, in stageInput) (*chat.MessageResult, error)
}

func (s *chatService) pipeline() []stage {
	return []stage{
		{name: StageNumericOnlyClarify, run: s.numericOnlyClarify},
		{name: StageAssetFAQ, run: s.assetFAQ},
		{name: StageSimpleExtraction, run: s.simpleExtraction},
		{name: StageRangeQuery, run: s.rangeQuery},
		{name: StageExternalExtraction, run: s.externalExtraction},
	}
}

// ProcessMessage runs the stages in order and returns the first result. A
// stage either declines, answers, or fails the whole message.
func (s *chatService) ProcessMessage(ctx context.Context, req chat.ProcessMessageRequest) (*chat.MessageResult, error) {
	requestID := contextPkg.GetRequestID(ctx)

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, chat.ErrEmptyMessage
	}

	in := stageInput{userID: req.UserID, message: message}
	for _, st := range s.stages {
		result, err := st.run(ctx, in)

		var d declined
		if errors.As(err, &d) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"stage":      st.name,
				"reason":     d.reason,
			}).Debug("Stage declined")
			continue
		}

		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"stage":      st.name,
				"error":      err.Error(),
			}).Error("Stage failed")
			return nil, err
		}

		result.Stage = st.name
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"stage":      st.name,
			"kind":       result.Kind,
		}).Debug("Stage handled message")
		return result, nil
	}

	return chat.Conversation(msgUnderstandFailed), nil
}

func (s *chatService) numericOnlyClarify(_ context.Context, in stageInput) (*chat.MessageResult, error) {
	if !nlp.IsNumericOnly(in.message) {
		return nil, decline("message has words")
	}
	return chat.Conversation(clarifyNumberMessage(in.message)), nil
}

func (s *chatService) assetFAQ(_ context.Context, in stageInput) (*chat.MessageResult, error) {
	if !s.vocab.IsAssetQuestion(in.message) {
		return nil, decline("not a question about assets")
	}
	if nlp.HasMoneyAmount(in.message) {
		return nil, decline("message carries an amount")
	}
	if _, ok := s.resolver.Resolve(in.message); ok {
		return nil, decline("message names a period")
	}
	return chat.Conversation(msgAssetExplanation), nil
}

func (s *chatService) simpleExtraction(ctx context.Context, in stageInput) (*chat.MessageResult, error) {
	transactions, err := s.extractor.Extract(in.message)
	if err != nil {
		return nil, decline(err.Error())
	}

	persisted, err := s.persist(ctx, in.userID, transactions)
	if err != nil {
		return nil, err
	}

	return chat.Confirmation(confirmationFor(persisted), len(persisted)), nil
}

func (s *chatService) rangeQuery(ctx context.Context, in stageInput) (*chat.MessageResult, error) {
	if nlp.HasMoneyAmount(in.message) {
		return nil, decline("message carries an amount")
	}

	types := s.vocab.QueryTypes(in.message)
	if len(types) == 0 {
		return nil, decline("no expense, income or asset keyword")
	}

	dateRange, ok := s.resolver.Resolve(in.message)
	if !ok {
		return nil, decline(nlp.ErrNoDateRange.Error())
	}

	transactions, err := s.store.GetTransactions(ctx, in.userID)
	if err != nil {
		return nil, err
	}

	return chat.Summary(summarizeRange(dateRange, types, transactions, s.cfg.AdvisoryExpenseThreshold)), nil
}
