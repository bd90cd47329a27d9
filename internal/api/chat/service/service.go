package chatService

import (
	"Fintar/internal/api/chat"
	"Fintar/internal/entity"
	"Fintar/pkg/completion"
	"Fintar/pkg/nlp"
	"time"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// TransactionStore is the persistence the pipeline needs. Per-user isolation
// is the store's job.
type TransactionStore interface {
	CreateTransaction(ctx context.Context, userID string, tx entity.Transaction) (entity.Transaction, error)
	GetTransactions(ctx context.Context, userID string) ([]entity.Transaction, error)
}

type IChatService interface {
	ProcessMessage(ctx context.Context, req chat.ProcessMessageRequest) (*chat.MessageResult, error)
}

type Option func(*chatService)

// WithClock replaces the wall clock used for "today".
func WithClock(now func() time.Time) Option {
	return func(s *chatService) {
		s.now = now
	}
}

func WithVocabulary(vocab *nlp.Vocabulary) Option {
	return func(s *chatService) {
		s.vocab = vocab
	}
}

type chatService struct {
	log        *logrus.Logger
	cfg        chat.Config
	store      TransactionStore
	completion completion.Client
	validator  *validator.Validate
	json       jsoniter.API

	now        func() time.Time
	loc        *time.Location
	vocab      *nlp.Vocabulary
	classifier *nlp.AssetClassifier
	resolver   *nlp.DateRangeResolver
	extractor  *nlp.SimpleTransactionExtractor
	stages     []stage
}

// NewChatService wires the message pipeline. completionClient may be nil, in
// which case messages that no deterministic stage handles are rejected.
func NewChatService(
	log *logrus.Logger,
	cfg chat.Config,
	store TransactionStore,
	completionClient completion.Client,
	validate *validator.Validate,
	opts ...Option,
) IChatService {
	s := &chatService{
		log:        log,
		cfg:        cfg,
		store:      store,
		completion: completionClient,
		validator:  validate,
		json:       jsoniter.ConfigCompatibleWithStandardLibrary,
		now:        time.Now,
		vocab:      nlp.Indonesian(),
	}
	for _, opt := range opts {
		opt(s)
	}

	loc, err := nlp.LoadLocation(cfg.Timezone)
	if err != nil {
		log.WithFields(logrus.Fields{
			"timezone": cfg.Timezone,
			"error":    err.Error(),
		}).Warn("Timezone not found, using fixed UTC+7")
	}
	s.loc = loc

	s.classifier = nlp.NewAssetClassifier(s.vocab, cfg.AutoExpenseDefault)
	s.resolver = nlp.NewDateRangeResolver(s.vocab, s.loc, s.now)
	s.extractor = nlp.NewSimpleTransactionExtractor(s.classifier, s.resolver)
	s.stages = s.pipeline()

	return s
}
