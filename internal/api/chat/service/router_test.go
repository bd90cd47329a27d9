package chatService

import (
	"Fintar/internal/api/chat"
	"Fintar/internal/entity"
	"Fintar/pkg/completion"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

func process(t *testing.T, svc *chatService, message string) (*chat.MessageResult, error) {
	t.Helper()
	return svc.ProcessMessage(context.Background(), chat.ProcessMessageRequest{UserID: "user-1", Message: message})
}

func TestProcessMessageRejectsEmpty(t *testing.T) {
	store := &fakeStore{}
	client := &fakeCompletion{}
	svc := newTestService(t, store, client)

	for _, message := range []string{"", "   \n\t"} {
		_, err := process(t, svc, message)
		assert.ErrorIs(t, err, chat.ErrEmptyMessage)
	}
	assert.Zero(t, store.calls)
	assert.Empty(t, client.requests)
}

func TestProcessMessageNumericOnly(t *testing.T) {
	store := &fakeStore{}
	client := &fakeCompletion{}
	svc := newTestService(t, store, client)

	result, err := process(t, svc, "15")
	require.NoError(t, err)

	assert.Equal(t, chat.KindConversation, result.Kind)
	assert.Equal(t, StageNumericOnlyClarify, result.Stage)
	assert.Contains(t, result.ConversationalMessage, "Angka 15")
	assert.Zero(t, store.calls)
	assert.Empty(t, client.requests)
}

func TestProcessMessageAssetFAQ(t *testing.T) {
	store := &fakeStore{}
	client := &fakeCompletion{}
	svc := newTestService(t, store, client)

	result, err := process(t, svc, "Apa itu aset?")
	require.NoError(t, err)

	assert.Equal(t, StageAssetFAQ, result.Stage)
	assert.Equal(t, msgAssetExplanation, result.ConversationalMessage)
	assert.Zero(t, store.calls)
	assert.Empty(t, client.requests)
}

func TestProcessMessageSimplePurchase(t *testing.T) {
	store := &fakeStore{}
	client := &fakeCompletion{}
	svc := newTestService(t, store, client)

	result, err := process(t, svc, "beli laptop 8jt")
	require.NoError(t, err)

	assert.Equal(t, chat.KindTransactionsLogged, result.Kind)
	assert.Equal(t, StageSimpleExtraction, result.Stage)
	assert.Equal(t, 1, result.TransactionsPersisted)
	assert.Contains(t, result.ConfirmationMessage, "aset 'laptop' senilai Rp 8.000.000")
	assert.Contains(t, result.ConfirmationMessage, "2026-10-20")
	assert.Empty(t, client.requests)

	require.Len(t, store.saved, 1)
	asset, ok := store.saved[0].(*entity.Asset)
	require.True(t, ok)
	assert.Equal(t, int64(8_000_000), asset.PurchasePrice)
	assert.Equal(t, civilDay(time.October, 20), asset.Date)
}

func TestProcessMessageSimplePurchaseWithPairedExpense(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(t, store, &fakeCompletion{})

	result, err := process(t, svc, "beli motor 15jt catat juga pengeluaran")
	require.NoError(t, err)

	assert.Equal(t, 2, result.TransactionsPersisted)
	assert.Contains(t, result.ConfirmationMessage, "Pembelian aset: motor")
	require.Len(t, store.saved, 2)
	assert.Equal(t, entity.TransactionTypeAsset, store.saved[0].Kind())
	assert.Equal(t, entity.TransactionTypeExpense, store.saved[1].Kind())
}

func TestProcessMessageRangeQuery(t *testing.T) {
	store := &fakeStore{listed: []entity.Transaction{
		&entity.Expense{Amount: 50_000, Category: entity.ExpenseCategoryFood, Description: "makan", Date: civilDay(time.October, 5)},
		&entity.Expense{Amount: 30_000, Category: entity.ExpenseCategoryTransport, Description: "bensin", Date: civilDay(time.October, 10)},
		&entity.Expense{Amount: 20_000, Category: entity.ExpenseCategoryFood, Description: "kopi", Date: civilDay(time.September, 30)},
		&entity.Income{Amount: 5_000_000, Category: entity.IncomeCategorySalary, Description: "gaji", Date: civilDay(time.October, 1)},
	}}
	client := &fakeCompletion{}
	svc := newTestService(t, store, client)

	result, err := process(t, svc, "pengeluaran bulan ini")
	require.NoError(t, err)

	assert.Equal(t, chat.KindAnalyticalSummary, result.Kind)
	assert.Equal(t, StageRangeQuery, result.Stage)
	assert.Equal(t, "Ringkasan bulan Oktober 2026 (2026-10-01 s/d 2026-10-31):\n\n"+
		"Total pengeluaran: Rp 80.000 dari 2 transaksi\n"+
		"Kategori pengeluaran teratas:\n"+
		"1. food: Rp 50.000\n"+
		"2. transport: Rp 30.000\n\n"+
		"💡 Keuanganmu pada periode ini terlihat terkendali. Tetap catat setiap transaksi ya!",
		result.AnalyticalSummary)
	assert.Equal(t, 1, store.lists)
	assert.Zero(t, store.calls)
	assert.Empty(t, client.requests)
}

func TestProcessMessageBareAmountIsNotARangeQuery(t *testing.T) {
	tests := []struct {
		message string
		reply   string
		kind    entity.TransactionType
	}{
		{
			message: "gaji kemarin 5000000",
			reply:   `{"hasTransactions": true, "message": "", "transactions": [{"type": "income", "amount": 5000000, "category": "salary", "description": "gaji", "date": "2026-10-19"}]}`,
			kind:    entity.TransactionTypeIncome,
		},
		{
			message: "belanja hari ini 150000",
			reply:   `{"hasTransactions": true, "message": "", "transactions": [{"type": "expense", "amount": 150000, "category": "shopping", "description": "belanja", "date": "2026-10-20"}]}`,
			kind:    entity.TransactionTypeExpense,
		},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			store := &fakeStore{}
			client := &fakeCompletion{reply: tt.reply}
			svc := newTestService(t, store, client)

			result, err := process(t, svc, tt.message)
			require.NoError(t, err)

			assert.Equal(t, StageExternalExtraction, result.Stage)
			assert.Equal(t, chat.KindTransactionsLogged, result.Kind)
			assert.Zero(t, store.lists)
			require.Len(t, client.requests, 1)
			require.Len(t, store.saved, 1)
			assert.Equal(t, tt.kind, store.saved[0].Kind())
		})
	}
}

func TestProcessMessageFallsThroughToCompletion(t *testing.T) {
	store := &fakeStore{}
	client := &fakeCompletion{reply: `{"message": "Halo! Ada yang bisa dibantu?", "hasTransactions": false}`}
	svc := newTestService(t, store, client)

	result, err := process(t, svc, "halo fintar")
	require.NoError(t, err)

	assert.Equal(t, StageExternalExtraction, result.Stage)
	assert.Equal(t, "Halo! Ada yang bisa dibantu?", result.ConversationalMessage)
	require.Len(t, client.requests, 1)
	assert.Equal(t, "halo fintar", client.requests[0].UserMessage)
	assert.Contains(t, client.requests[0].SystemPrompt, "Today is 2026-10-20")
	assert.Contains(t, client.requests[0].SystemPrompt, "Yesterday was 2026-10-19")
}

func TestProcessMessageCompletionDisabled(t *testing.T) {
	svc := NewChatService(testLogger(), chat.DefaultConfig(), &fakeStore{}, nil, nil, WithClock(testClock))

	_, err := svc.ProcessMessage(context.Background(), chat.ProcessMessageRequest{UserID: "user-1", Message: "halo"})
	assert.ErrorIs(t, err, chat.ErrCompletionDisabled)

	result, err := svc.ProcessMessage(context.Background(), chat.ProcessMessageRequest{UserID: "user-1", Message: "beli laptop 8jt"})
	require.NoError(t, err)
	assert.Equal(t, StageSimpleExtraction, result.Stage)
}

func TestProcessMessageCompletionFailure(t *testing.T) {
	client := &fakeCompletion{err: &completion.ServiceError{Provider: "fake", Status: 429, Message: "quota exceeded"}}
	svc := newTestService(t, &fakeStore{}, client)

	_, err := process(t, svc, "halo fintar")
	require.Error(t, err)
	assert.ErrorIs(t, err, chat.ErrCompletionService)

	var svcErr *completion.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 429, svcErr.Status)
	assert.Equal(t, "quota exceeded", svcErr.Message)
}

func TestPipelineOrder(t *testing.T) {
	svc := newTestService(t, &fakeStore{}, &fakeCompletion{})

	names := make([]string, 0, len(svc.stages))
	for _, st := range svc.stages {
		names = append(names, st.name)
	}
	assert.Equal(t, []string{
		StageNumericOnlyClarify,
		StageAssetFAQ,
		StageSimpleExtraction,
		StageRangeQuery,
		StageExternalExtraction,
	}, names)
}
