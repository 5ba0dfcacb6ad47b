package querysum

import "strings"

// ValidateQuery applies the search engine's query syntax rules.
// The engine writes nothing to its output for a query it rejects, so
// queries must be checked before they are sent.
func ValidateQuery(query string) error {
	for _, r := range query {
		if !isASCIILetter(r) && !isASCIISpace(r) {
			return Errorf(EINVALID, "bad character '%c' in query.", r)
		}
	}

	words := strings.Fields(strings.ToLower(query))
	for i, word := range words {
		if !isOperator(word) {
			continue
		}
		if i == 0 {
			return Errorf(EINVALID, "'%s' cannot be first.", word)
		}
		if isOperator(words[i-1]) {
			return Errorf(EINVALID, "'%s' and '%s' cannot be adjacent.", words[i-1], word)
		}
	}
	if n := len(words); n > 0 && isOperator(words[n-1]) {
		return Errorf(EINVALID, "'%s' cannot be last.", words[n-1])
	}

	return nil
}

func isOperator(word string) bool {
	return word == "and" || word == "or"
}

// isASCIISpace matches C isspace in the default locale. Other Unicode
// spaces are rejected by the engine.
func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
