package chat

type ProcessMessageRequest struct {
	UserID  string `json:"-"`
	Message string `json:"message" validate:"required"`
}

type ResultKind string

const (
	KindConversation       ResultKind = "conversation"
	KindTransactionsLogged ResultKind = "transactions_logged"
	KindAnalyticalSummary  ResultKind = "analytical_summary"
)

// MessageResult carries exactly one of the conversational message, the
// confirmation with its persisted count, or the analytical summary.
type MessageResult struct {
	Kind                  ResultKind `json:"kind"`
	Stage                 string     `json:"stage"`
	ConversationalMessage string     `json:"conversational_message,omitempty"`
	ConfirmationMessage   string     `json:"confirmation_message,omitempty"`
	TransactionsPersisted int        `json:"transactions_persisted,omitempty"`
	AnalyticalSummary     string     `json:"analytical_summary,omitempty"`
}

func Conversation(message string) *MessageResult {
	return &MessageResult{Kind: KindConversation, ConversationalMessage: message}
}

func Confirmation(message string, persisted int) *MessageResult {
	return &MessageResult{Kind: KindTransactionsLogged, ConfirmationMessage: message, TransactionsPersisted: persisted}
}

func Summary(summary string) *MessageResult {
	return &MessageResult{Kind: KindAnalyticalSummary, AnalyticalSummary: summary}
}
