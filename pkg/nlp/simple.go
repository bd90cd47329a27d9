package nlp

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"Fintar/internal/entity"
)

var ErrNoTemplateMatch = errors.New("message does not match a purchase template")

const autoExpensePrefix = "Pembelian aset: "

var (
	clauseSplitPattern = regexp.MustCompile(`(?i),\s+|;|\n|\s+dan\s+`)
	templatePattern    = regexp.MustCompile(
		`(?i)^(beli aset|aset|asset|beli)\s+(.+)\s+((?:rp\.?\s*)?\d[\d.,]*\s*(?:juta|jt|ribu|rb|k)?)(?:\s+(\D*))?$`)
	trailingRpPattern = regexp.MustCompile(`(?i)\s+rp\.?$`)
)

// SimpleTransactionExtractor recognises short purchase commands such as
// "beli laptop 8jt" or "aset motor 15jt kemarin" without calling a model.
type SimpleTransactionExtractor struct {
	classifier *AssetClassifier
	resolver   *DateRangeResolver
}

func NewSimpleTransactionExtractor(classifier *AssetClassifier, resolver *DateRangeResolver) *SimpleTransactionExtractor {
	return &SimpleTransactionExtractor{
		classifier: classifier,
		resolver:   resolver,
	}
}

// SimplePurchase is one matched clause.
type SimplePurchase struct {
	Template string
	Name     string
	Amount   int64
	Date     time.Time
	Decision ClassificationDecision
}

// Match parses every clause of message. All clauses have to match a template,
// otherwise the whole message is declined with ErrNoTemplateMatch.
func (e *SimpleTransactionExtractor) Match(message string) ([]SimplePurchase, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrNoTemplateMatch
	}

	var purchases []SimplePurchase
	for _, clause := range clauseSplitPattern.Split(message, -1) {
		clause = spacePattern.ReplaceAllString(strings.TrimSpace(clause), " ")
		if clause == "" {
			continue
		}

		purchase, err := e.matchClause(message, clause)
		if err != nil {
			return nil, err
		}
		purchases = append(purchases, purchase)
	}

	if len(purchases) == 0 {
		return nil, ErrNoTemplateMatch
	}
	return purchases, nil
}

func (e *SimpleTransactionExtractor) matchClause(message, clause string) (SimplePurchase, error) {
	m := templatePattern.FindStringSubmatch(clause)
	if m == nil {
		return SimplePurchase{}, ErrNoTemplateMatch
	}

	template := strings.ToLower(m[1])
	name := strings.TrimSpace(trailingRpPattern.ReplaceAllString(m[2], ""))
	if name == "" {
		return SimplePurchase{}, ErrNoTemplateMatch
	}

	amount, err := NormalizeAmount(m[3])
	if err != nil || amount <= 0 {
		return SimplePurchase{}, ErrNoTemplateMatch
	}

	// A clause naming one day ("kemarin") is dated that day. A longer period
	// is not a purchase command.
	date := e.resolver.Today()
	if dr, ok := e.resolver.Resolve(clause); ok {
		if !dr.Start.Equal(dr.End) {
			return SimplePurchase{}, ErrNoTemplateMatch
		}
		date = dr.Start
	}

	candidate := AssetCandidate{Text: clause, Name: name, Amount: amount}

	var decision ClassificationDecision
	if template == "beli" {
		decision = e.classifier.Decide(message, candidate)
		if !decision.IsAsset {
			return SimplePurchase{}, ErrNoTemplateMatch
		}
	} else {
		decision = ClassificationDecision{
			IsAsset:         true,
			PairWithExpense: e.classifier.ShouldAutoExpense(message),
			Forced:          true,
			Signal:          SignalAssetKeyword,
		}
	}

	return SimplePurchase{
		Template: template,
		Name:     name,
		Amount:   amount,
		Date:     date,
		Decision: decision,
	}, nil
}

// Extract turns a matched message into transactions: one asset per clause,
// each followed by its paired expense when auto-expense applies. Clauses
// without a date word are dated today.
func (e *SimpleTransactionExtractor) Extract(message string) ([]entity.Transaction, error) {
	purchases, err := e.Match(message)
	if err != nil {
		return nil, err
	}

	transactions := make([]entity.Transaction, 0, len(purchases)*2)
	for _, p := range purchases {
		transactions = append(transactions, entity.NewAsset(p.Name, p.Amount, p.Date))

		if p.Decision.PairWithExpense {
			transactions = append(transactions, &entity.Expense{
				Amount:      p.Amount,
				Category:    entity.ExpenseCategoryOther,
				Description: autoExpensePrefix + p.Name,
				Date:        p.Date,
			})
		}
	}

	return transactions, nil
}
