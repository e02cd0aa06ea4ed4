package riasec

// Bank describes the question bank a score vector was collected with.
// Normalization bounds derive from it instead of being hardcoded, so the full
// 90-question bank and the 18-question strategic subset share one code path.
//
// The quick bank multiplies raw totals by 5 so they stay comparable to the
// full-bank scale; the bounds below already include that multiplier.
type Bank struct {
	QuestionsPerCategory int
	ScoreMultiplier      int
}

var (
	// FullBank is the complete 90-question bank, 15 statements per category.
	FullBank = Bank{QuestionsPerCategory: 15, ScoreMultiplier: 1}

	// QuickBank is the 18-question strategic subset, 3 statements per
	// category with a compensating x5 multiplier.
	QuickBank = Bank{QuestionsPerCategory: 3, ScoreMultiplier: 5}
)

// MinScore is the lowest reachable per-category total (every answer = 1).
func (b Bank) MinScore() int {
	return b.QuestionsPerCategory * b.ScoreMultiplier
}

// MaxScore is the highest reachable per-category total (every answer = 5).
func (b Bank) MaxScore() int {
	return b.QuestionsPerCategory * b.ScoreMultiplier * 5
}
