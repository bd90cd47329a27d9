package nlp

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var spacePattern = regexp.MustCompile(`\s+`)

// CleanText lowercases text, folds accents and replaces everything that is not
// a letter or digit with a single space.
func CleanText(text string) string {
	text = strings.ToLower(text)

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, err := transform.String(t, text)
	if err != nil {
		result = text
	}

	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, result)

	return strings.Join(strings.Fields(result), " ")
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

// normalizeSpaces lowercases text and collapses whitespace while keeping
// punctuation, which amount and date patterns rely on.
func normalizeSpaces(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	text = strings.NewReplacer("–", "-", "—", "-").Replace(text)
	return spacePattern.ReplaceAllString(text, " ")
}

// ContainsPhrase reports whether phrase occurs in text on word boundaries.
// Both sides are run through CleanText first.
func ContainsPhrase(text, phrase string) bool {
	phrase = CleanText(phrase)
	if phrase == "" {
		return false
	}
	return strings.Contains(" "+CleanText(text)+" ", " "+phrase+" ")
}

// MatchPhrase returns the first phrase found in text.
func MatchPhrase(text string, phrases []string) (string, bool) {
	padded := " " + CleanText(text) + " "
	for _, phrase := range phrases {
		p := CleanText(phrase)
		if p != "" && strings.Contains(padded, " "+p+" ") {
			return phrase, true
		}
	}
	return "", false
}

func ContainsAny(text string, phrases []string) bool {
	_, ok := MatchPhrase(text, phrases)
	return ok
}
