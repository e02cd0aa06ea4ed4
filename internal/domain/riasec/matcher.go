package riasec

import (
	"math"
	"sort"
)

// Weights is a reference item's RIASEC profile, each weight in 1..10.
type Weights map[Category]int

// ReferenceItem is a catalog entry (a major or a career) the user profile is
// matched against. The catalog is externally supplied and immutable here.
type ReferenceItem struct {
	ID          string
	Name        string
	Description string
	Subcategory string
	Profile     Weights
}

// MatchResult is one scored recommendation. Recomputed per request, never
// persisted.
type MatchResult struct {
	ID              string
	Name            string
	Description     string
	Subcategory     string
	MatchedType     Category
	Profile         Weights
	MatchScore      int
	ConfidenceScore int
	Reasoning       string
}

const (
	confidenceBase = 50
	confidenceMin  = 10
	confidenceMax  = 95

	reasonTopInterest    = "Sangat sesuai dengan minat utamamu"
	reasonSecondInterest = "Sesuai dengan minat terkuat keduamu"
	reasonThirdInterest  = "Sesuai dengan minat terkuat ketigamu"
	reasonVeryHighMatch  = ", dengan tingkat kecocokan yang sangat tinggi"
	reasonNeedsThought   = ", namun masih perlu dipertimbangkan lebih lanjut"
)

// Match scores every catalog item whose dominant category falls inside the
// user's top three. Items outside that set are excluded entirely; this is a
// hard filter, not a low score. Output is deduplicated by item id and ordered
// by (confidence desc, match desc, id asc).
func Match(profile UserProfile, items []ReferenceItem) []MatchResult {
	if len(profile.TopThree) == 0 {
		return []MatchResult{}
	}

	rankByCategory := make(map[Category]int, len(profile.TopThree))
	for i, c := range profile.TopThree {
		rankByCategory[c] = i + 1
	}

	userPct := make(map[Category]int, len(profile.Percentages))
	for _, p := range profile.Percentages {
		userPct[p.Category] = p.Value
	}

	results := make([]MatchResult, 0, len(items))
	seen := make(map[string]struct{}, len(items))

	for _, item := range items {
		dominant := DominantCategory(item.Profile)
		rank, ok := rankByCategory[dominant]
		if !ok {
			continue
		}
		if _, dup := seen[item.ID]; dup {
			continue
		}
		seen[item.ID] = struct{}{}

		matchScore := matchScore(userPct, item.Profile)
		confidence, reasoning := confidenceScore(rank, matchScore)

		results = append(results, MatchResult{
			ID:              item.ID,
			Name:            item.Name,
			Description:     item.Description,
			Subcategory:     item.Subcategory,
			MatchedType:     dominant,
			Profile:         item.Profile,
			MatchScore:      matchScore,
			ConfidenceScore: confidence,
			Reasoning:       reasoning,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].ConfidenceScore != results[j].ConfidenceScore {
			return results[i].ConfidenceScore > results[j].ConfidenceScore
		}
		if results[i].MatchScore != results[j].MatchScore {
			return results[i].MatchScore > results[j].MatchScore
		}
		return results[i].ID < results[j].ID
	})

	return results
}

// DominantCategory resolves the highest-weighted category of a profile. Ties
// (including the all-zero profile) resolve to the first hit in canonical
// RIASEC order, keeping the result reproducible.
func DominantCategory(w Weights) Category {
	dominant := Categories[0]
	best := math.MinInt
	for _, c := range Categories {
		if v := w[c]; v > best {
			best = v
			dominant = c
		}
	}
	return dominant
}

// matchScore is a similarity transform of L1 distance: the sum of absolute
// differences between the user's percentages and the item weights scaled from
// 1..10 to 0..100, mapped so a zero distance scores 100. Chosen for
// interpretability over precision.
func matchScore(userPct map[Category]int, item Weights) int {
	sad := 0
	for _, c := range Categories {
		diff := userPct[c] - item[c]*10
		if diff < 0 {
			diff = -diff
		}
		sad += diff
	}
	maxSAD := 100 * len(Categories)
	return int(math.Round((1 - float64(sad)/float64(maxSAD)) * 100))
}

// confidenceScore is a layered heuristic, not a statistical interval: a base
// of 50, a bonus by which of the user's top ranks the item matched, and
// modifiers at the match-score extremes, clamped to 10..95.
func confidenceScore(rank, matchScore int) (int, string) {
	score := confidenceBase

	var reasoning string
	switch rank {
	case 1:
		score += 40
		reasoning = reasonTopInterest
	case 2:
		score += 30
		reasoning = reasonSecondInterest
	default:
		score += 20
		reasoning = reasonThirdInterest
	}

	if matchScore > 80 {
		score += 10
		reasoning += reasonVeryHighMatch
	}
	if matchScore < 60 {
		score -= 15
		reasoning += reasonNeedsThought
	}

	return clampInt(score, confidenceMin, confidenceMax), reasoning
}
