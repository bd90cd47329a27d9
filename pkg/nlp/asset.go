package nlp

// AssetSignal names the rule that decided an asset classification.
type AssetSignal string

const (
	SignalNone            AssetSignal = "none"
	SignalConsumable      AssetSignal = "consumable_excluded"
	SignalForcePhrase     AssetSignal = "force_phrase"
	SignalAssetKeyword    AssetSignal = "asset_keyword"
	SignalDurableName     AssetSignal = "durable_name_threshold"
	SignalAmountThreshold AssetSignal = "amount_threshold"
)

const (
	DefaultDurableMinimum  int64 = 300_000
	DefaultAmountThreshold int64 = 2_000_000
)

// AssetCandidate is the input of one classification: the text the rules look
// at, the extracted item name and its normalized amount.
type AssetCandidate struct {
	Text   string
	Name   string
	Amount int64
}

// AssetRule is one named eligibility predicate.
type AssetRule struct {
	Signal AssetSignal
	Forced bool
	Match  func(c AssetCandidate) bool
}

type AssetDecision struct {
	Eligible bool
	Signal   AssetSignal
	Forced   bool
}

// ClassificationDecision is produced once per message and consumed by the
// router straight away.
type ClassificationDecision struct {
	IsAsset         bool
	PairWithExpense bool
	Forced          bool
	Signal          AssetSignal
}

type AssetClassifierOption func(*AssetClassifier)

func WithDurableMinimum(amount int64) AssetClassifierOption {
	return func(c *AssetClassifier) {
		c.durableMinimum = amount
	}
}

func WithAmountThreshold(amount int64) AssetClassifierOption {
	return func(c *AssetClassifier) {
		c.amountThreshold = amount
	}
}

type AssetClassifier struct {
	vocab              *Vocabulary
	durableMinimum     int64
	amountThreshold    int64
	autoExpenseDefault bool
	rules              []AssetRule
}

func NewAssetClassifier(vocab *Vocabulary, autoExpenseDefault bool, opts ...AssetClassifierOption) *AssetClassifier {
	c := &AssetClassifier{
		vocab:              vocab,
		durableMinimum:     DefaultDurableMinimum,
		amountThreshold:    DefaultAmountThreshold,
		autoExpenseDefault: autoExpenseDefault,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.rules = []AssetRule{
		{
			Signal: SignalForcePhrase,
			Forced: true,
			Match: func(in AssetCandidate) bool {
				return ContainsAny(in.Text, c.vocab.ForceAssetPhrases)
			},
		},
		{
			Signal: SignalAssetKeyword,
			Match: func(in AssetCandidate) bool {
				return ContainsAny(in.Text, c.vocab.AssetWords)
			},
		},
		{
			Signal: SignalDurableName,
			Match: func(in AssetCandidate) bool {
				return ContainsAny(in.Name, c.vocab.DurableGoods) && in.Amount >= c.durableMinimum
			},
		},
		{
			// Any large purchase without consumable wording.
			Signal: SignalAmountThreshold,
			Match: func(in AssetCandidate) bool {
				return in.Amount >= c.amountThreshold
			},
		},
	}

	return c
}

// Rules returns the eligibility rules in evaluation order.
func (c *AssetClassifier) Rules() []AssetRule {
	return c.rules
}

// IsConsumable reports whether text mentions anything on the consumable list.
func (c *AssetClassifier) IsConsumable(text string) bool {
	return ContainsAny(text, c.vocab.Consumables)
}

// Classify checks the consumable exclusion first and then the rules in
// order. The first rule that fires decides.
func (c *AssetClassifier) Classify(in AssetCandidate) AssetDecision {
	if c.IsConsumable(in.Text) || c.IsConsumable(in.Name) {
		return AssetDecision{Signal: SignalConsumable}
	}

	for _, rule := range c.rules {
		if rule.Match(in) {
			return AssetDecision{Eligible: true, Signal: rule.Signal, Forced: rule.Forced}
		}
	}

	return AssetDecision{Signal: SignalNone}
}

// ShouldAutoExpense resolves whether an asset purchase also records a paired
// expense. Negative phrases win over positive ones; without either the
// configured default applies.
func (c *AssetClassifier) ShouldAutoExpense(text string) bool {
	if ContainsAny(text, c.vocab.AutoExpenseOff) {
		return false
	}
	if ContainsAny(text, c.vocab.AutoExpenseOn) {
		return true
	}
	return c.autoExpenseDefault
}

// Decide combines Classify and ShouldAutoExpense. message is the full
// message, used for the auto-expense override.
func (c *AssetClassifier) Decide(message string, in AssetCandidate) ClassificationDecision {
	decision := c.Classify(in)
	if !decision.Eligible {
		return ClassificationDecision{Signal: decision.Signal}
	}

	return ClassificationDecision{
		IsAsset:         true,
		PairWithExpense: c.ShouldAutoExpense(message),
		Forced:          decision.Forced,
		Signal:          decision.Signal,
	}
}
