package riasec

// Answer is a single Likert response. The category tag belongs to the
// question, not the answer, and is carried alongside the value.
type Answer struct {
	QuestionID int
	Category   Category
	Value      int // Likert 1..5
}

// ScoreVector maps each answered category to its total. Categories with no
// observed answers are absent, which downstream code treats differently from
// a zero total.
type ScoreVector map[Category]int

// Aggregate sums Likert values per category and applies the bank's score
// multiplier. An empty answer set yields an empty vector; there are no error
// conditions.
func Aggregate(answers []Answer, bank Bank) ScoreVector {
	out := make(ScoreVector)
	for _, a := range answers {
		if _, ok := ParseCategory(string(a.Category)); !ok {
			continue
		}
		out[a.Category] += a.Value
	}

	mult := bank.ScoreMultiplier
	if mult <= 0 {
		mult = 1
	}
	for c, total := range out {
		out[c] = total * mult
	}
	return out
}
