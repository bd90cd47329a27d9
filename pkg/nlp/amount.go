package nlp

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrUnparseableAmount = errors.New("unparseable amount")

var (
	amountTokenPattern = regexp.MustCompile(`(?i)^(?:rp\.?\s*)?(\d[\d.,]*)\s*(juta|jt|ribu|rb|k)?$`)
	amountFindPattern  = regexp.MustCompile(`(?i)(?:rp\.?\s*)?\d[\d.,]*\s*(?:juta|jt|ribu|rb|k)?\b`)
	moneyPattern       = regexp.MustCompile(`(?i)(?:rp\.?\s*\d[\d.,]*|\d[\d.,]*\s*(?:juta|jt|ribu|rb|k)\b|\b\d{1,3}(?:\.\d{3})+\b)`)
	numericOnlyPattern = regexp.MustCompile(`^[\d\s.,]+$`)
	bareNumberPattern  = regexp.MustCompile(`\b\d{3,}\b`)

	maxAmount = decimal.NewFromInt(math.MaxInt64)
)

var suffixMultipliers = map[string]int64{
	"jt":   1_000_000,
	"juta": 1_000_000,
	"rb":   1_000,
	"ribu": 1_000,
	"k":    1_000,
}

// NormalizeAmount converts a token such as "25rb", "1.5jt", "Rp 25.000" or
// "100k" to whole rupiah.
//
// A dot is read as a thousands separator only when every group after it has
// exactly three digits ("25.000", "1.500.000"). Otherwise the first dot is a
// decimal point, so "1.5jt" is 1,500,000 and a bare "16.25" rounds to 16.
// A comma is always a decimal point. Rounding is half away from zero.
func NormalizeAmount(token string) (int64, error) {
	m := amountTokenPattern.FindStringSubmatch(strings.TrimSpace(token))
	if m == nil {
		return 0, ErrUnparseableAmount
	}

	value, err := parseNumber(m[1])
	if err != nil {
		return 0, err
	}

	if suffix := strings.ToLower(m[2]); suffix != "" {
		value = value.Mul(decimal.NewFromInt(suffixMultipliers[suffix]))
	}

	value = value.Round(0)
	if value.GreaterThan(maxAmount) {
		return 0, ErrUnparseableAmount
	}

	return value.IntPart(), nil
}

func parseNumber(raw string) (decimal.Decimal, error) {
	raw = strings.TrimRight(raw, ".,")
	if raw == "" {
		return decimal.Zero, ErrUnparseableAmount
	}

	var normalized string
	if i := strings.Index(raw, ","); i >= 0 {
		fraction := raw[i+1:]
		if strings.ContainsAny(fraction, ".,") {
			return decimal.Zero, ErrUnparseableAmount
		}
		normalized = strings.ReplaceAll(raw[:i], ".", "") + "." + fraction
	} else {
		groups := strings.Split(raw, ".")
		if isThousandsGrouping(groups) {
			normalized = strings.Join(groups, "")
		} else {
			normalized = groups[0] + "." + strings.Join(groups[1:], "")
		}
	}

	value, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, ErrUnparseableAmount
	}
	return value, nil
}

func isThousandsGrouping(groups []string) bool {
	if len(groups) < 2 {
		return true
	}
	for _, g := range groups[1:] {
		if len(g) != 3 {
			return false
		}
	}
	return true
}

// FindAmount returns the first amount found anywhere in text together with
// the token it was parsed from.
func FindAmount(text string) (int64, string, bool) {
	for _, token := range amountFindPattern.FindAllString(text, -1) {
		amount, err := NormalizeAmount(token)
		if err == nil && amount > 0 {
			return amount, strings.TrimSpace(token), true
		}
	}
	return 0, "", false
}

// HasMoneyAmount reports whether text carries something that reads as a
// money amount: an Rp prefix, a magnitude suffix, dotted thousands, or a bare
// number of three or more digits. A day of month or a year does not count.
func HasMoneyAmount(text string) bool {
	if moneyPattern.MatchString(text) {
		return true
	}
	for _, n := range bareNumberPattern.FindAllString(text, -1) {
		if !isYear(n) {
			return true
		}
	}
	return false
}

func isYear(n string) bool {
	if len(n) != 4 {
		return false
	}
	year, err := strconv.Atoi(n)
	return err == nil && year >= 1900 && year <= 2199
}

// IsNumericOnly reports whether text holds nothing but digits, separators and
// whitespace.
func IsNumericOnly(text string) bool {
	text = strings.TrimSpace(text)
	return text != "" && numericOnlyPattern.MatchString(text)
}
