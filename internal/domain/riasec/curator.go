package riasec

import "sort"

const (
	maxGroupSize = 4
	maxTopPicks  = 3

	// UngroupedTag buckets results whose catalog row carries no subcategory.
	UngroupedTag = "Lainnya"
)

// CuratedRecommendations is the display-ready split of matcher output: a
// small always-visible set of top picks (one item per group) and the capped
// remainder per group. Built once per report, discarded after the response.
type CuratedRecommendations struct {
	TopPicks     map[string]MatchResult
	Alternatives map[string][]MatchResult
	TotalCount   int
}

// Curate groups matches by subcategory tag, caps each group at four entries,
// ranks groups by average confidence (then average match, then tag), and
// promotes the single best item of the first three groups to top picks. The
// asymmetry — top groups truncated to one, alternative groups keeping their
// capped list — is user-facing behavior and is preserved exactly.
//
// TotalCount reports the flat matcher output length, before any truncation.
func Curate(matches []MatchResult) CuratedRecommendations {
	out := CuratedRecommendations{
		TopPicks:     map[string]MatchResult{},
		Alternatives: map[string][]MatchResult{},
		TotalCount:   len(matches),
	}

	groups := map[string][]MatchResult{}
	for _, m := range matches {
		tag := m.Subcategory
		if tag == "" {
			tag = UngroupedTag
		}
		groups[tag] = append(groups[tag], m)
	}

	type rankedGroup struct {
		tag           string
		items         []MatchResult
		avgConfidence float64
		avgMatch      float64
	}

	ranked := make([]rankedGroup, 0, len(groups))
	for tag, items := range groups {
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].ConfidenceScore != items[j].ConfidenceScore {
				return items[i].ConfidenceScore > items[j].ConfidenceScore
			}
			return items[i].MatchScore > items[j].MatchScore
		})
		if len(items) > maxGroupSize {
			items = items[:maxGroupSize]
		}

		var confSum, matchSum int
		for _, it := range items {
			confSum += it.ConfidenceScore
			matchSum += it.MatchScore
		}
		n := float64(len(items))
		ranked = append(ranked, rankedGroup{
			tag:           tag,
			items:         items,
			avgConfidence: float64(confSum) / n,
			avgMatch:      float64(matchSum) / n,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].avgConfidence != ranked[j].avgConfidence {
			return ranked[i].avgConfidence > ranked[j].avgConfidence
		}
		if ranked[i].avgMatch != ranked[j].avgMatch {
			return ranked[i].avgMatch > ranked[j].avgMatch
		}
		return ranked[i].tag < ranked[j].tag
	})

	for i, g := range ranked {
		if i < maxTopPicks {
			out.TopPicks[g.tag] = g.items[0]
			continue
		}
		out.Alternatives[g.tag] = g.items
	}

	return out
}
