package scrape

// CountFunc reports the number of tokens in text.
type CountFunc func(text string) int

// EstimateTokens approximates a token count at four bytes per token.
func EstimateTokens(text string) int {
	return (len(text) + 3) / 4
}

// FitTokens shortens content until count reports at most maxTokens, then
// appends TruncationMarker. It reports whether content was cut.
// A non-positive maxTokens disables the budget.
func FitTokens(content string, maxTokens int, count CountFunc) (string, bool) {
	if maxTokens <= 0 {
		return content, false
	}
	n := count(content)
	if n <= maxTokens {
		return content, false
	}

	runes := []rune(content)
	keep := len(runes) * maxTokens / n
	for keep > 0 {
		cut := string(runes[:keep])
		if count(cut) <= maxTokens {
			return cut + TruncationMarker, true
		}
		keep = keep * 9 / 10
	}
	return TruncationMarker, true
}
