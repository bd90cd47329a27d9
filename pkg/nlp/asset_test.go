package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssetClassifierClassify(t *testing.T) {
	classifier := NewAssetClassifier(Indonesian(), false)

	tests := []struct {
		name       string
		candidate  AssetCandidate
		eligible   bool
		signal     AssetSignal
		wantForced bool
	}{
		{
			name:      "durable good above minimum",
			candidate: AssetCandidate{Text: "beli laptop 8jt", Name: "laptop", Amount: 8_000_000},
			eligible:  true,
			signal:    SignalDurableName,
		},
		{
			name:      "durable good below minimum",
			candidate: AssetCandidate{Text: "beli hp 150rb", Name: "hp", Amount: 150_000},
			signal:    SignalNone,
		},
		{
			name:      "consumable is excluded even when expensive",
			candidate: AssetCandidate{Text: "beli bensin 3jt", Name: "bensin", Amount: 3_000_000},
			signal:    SignalConsumable,
		},
		{
			name:      "consumable beats a force phrase",
			candidate: AssetCandidate{Text: "beli bensin 3jt sebagai aset", Name: "bensin", Amount: 3_000_000},
			signal:    SignalConsumable,
		},
		{
			name:      "consumable beats an asset keyword",
			candidate: AssetCandidate{Text: "beli kopi investasi 2jt", Name: "kopi investasi", Amount: 2_000_000},
			signal:    SignalConsumable,
		},
		{
			name:       "force phrase",
			candidate:  AssetCandidate{Text: "beli lukisan 500rb ini aset", Name: "lukisan", Amount: 500_000},
			eligible:   true,
			signal:     SignalForcePhrase,
			wantForced: true,
		},
		{
			name:      "asset keyword",
			candidate: AssetCandidate{Text: "beli investasi reksadana 1jt", Name: "investasi reksadana", Amount: 1_000_000},
			eligible:  true,
			signal:    SignalAssetKeyword,
		},
		{
			name:      "large unnamed purchase",
			candidate: AssetCandidate{Text: "beli perhiasan 2.5jt", Name: "perhiasan", Amount: 2_500_000},
			eligible:  true,
			signal:    SignalAmountThreshold,
		},
		{
			name:      "small unnamed purchase",
			candidate: AssetCandidate{Text: "beli kaos 100rb", Name: "kaos", Amount: 100_000},
			signal:    SignalNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(tt.candidate)
			assert.Equal(t, tt.eligible, got.Eligible)
			assert.Equal(t, tt.signal, got.Signal)
			assert.Equal(t, tt.wantForced, got.Forced)
		})
	}
}

func TestAssetClassifierOptions(t *testing.T) {
	classifier := NewAssetClassifier(Indonesian(), false,
		WithDurableMinimum(100_000),
		WithAmountThreshold(10_000_000))

	got := classifier.Classify(AssetCandidate{Text: "beli hp 150rb", Name: "hp", Amount: 150_000})
	assert.True(t, got.Eligible)
	assert.Equal(t, SignalDurableName, got.Signal)

	got = classifier.Classify(AssetCandidate{Text: "beli perhiasan 5jt", Name: "perhiasan", Amount: 5_000_000})
	assert.False(t, got.Eligible)
}

func TestShouldAutoExpense(t *testing.T) {
	off := NewAssetClassifier(Indonesian(), false)
	on := NewAssetClassifier(Indonesian(), true)

	assert.False(t, off.ShouldAutoExpense("beli laptop 8jt"))
	assert.True(t, on.ShouldAutoExpense("beli laptop 8jt"))
	assert.True(t, off.ShouldAutoExpense("beli laptop 8jt catat juga pengeluaran"))
	assert.False(t, on.ShouldAutoExpense("beli laptop 8jt tanpa pengeluaran"))
	assert.False(t, on.ShouldAutoExpense("catat juga pengeluaran, eh tanpa pengeluaran"))
}

func TestDecide(t *testing.T) {
	classifier := NewAssetClassifier(Indonesian(), false)

	decision := classifier.Decide("beli motor 15jt catat juga pengeluaran",
		AssetCandidate{Text: "beli motor 15jt catat juga pengeluaran", Name: "motor", Amount: 15_000_000})
	assert.Equal(t, ClassificationDecision{
		IsAsset:         true,
		PairWithExpense: true,
		Signal:          SignalDurableName,
	}, decision)

	decision = classifier.Decide("beli kopi 25rb",
		AssetCandidate{Text: "beli kopi 25rb", Name: "kopi", Amount: 25_000})
	assert.False(t, decision.IsAsset)
	assert.False(t, decision.PairWithExpense)
}

func TestRulesOrder(t *testing.T) {
	rules := NewAssetClassifier(Indonesian(), false).Rules()

	signals := make([]AssetSignal, 0, len(rules))
	for _, r := range rules {
		signals = append(signals, r.Signal)
	}
	assert.Equal(t, []AssetSignal{SignalForcePhrase, SignalAssetKeyword, SignalDurableName, SignalAmountThreshold}, signals)
}

func TestAssetClassifierDecideConsumableWithForcePhrase(t *testing.T) {
	classifier := NewAssetClassifier(Indonesian(), true)

	message := "beli bensin 3jt sebagai aset"
	got := classifier.Decide(message, AssetCandidate{Text: message, Name: "bensin", Amount: 3_000_000})
	assert.False(t, got.IsAsset)
	assert.False(t, got.PairWithExpense)
	assert.Equal(t, SignalConsumable, got.Signal)
}
