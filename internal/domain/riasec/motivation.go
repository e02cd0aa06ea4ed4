package riasec

// MotivationDefaultKey holds the fallback narrative every unknown or empty
// code resolves to.
const MotivationDefaultKey = "DEFAULT"

// ResolveMotivation looks up the narrative for a two-letter top-two code.
// The pair relationship is symmetric, so a miss on the exact code retries the
// reversed code before falling back to the default entry. Total over its
// input domain: never errors.
func ResolveMotivation(topTwoCode string, templates map[string]string) string {
	if templates == nil {
		return ""
	}
	if m, ok := templates[topTwoCode]; ok {
		return m
	}
	if m, ok := templates[reverseCode(topTwoCode)]; ok {
		return m
	}
	return templates[MotivationDefaultKey]
}

func reverseCode(code string) string {
	runes := []rune(code)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
