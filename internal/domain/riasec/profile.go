package riasec

import (
	"math"
	"sort"
	"strings"
)

// PersonaIncomplete is the persona returned when fewer than two categories
// have observed answers. A degraded profile is a valid state, not an error.
const PersonaIncomplete = "Profil Unik"

// ScorePair is an ordered (category, value) entry of a profile.
type ScorePair struct {
	Category Category
	Value    int
}

// UserProfile is the read-only snapshot derived from a score vector.
type UserProfile struct {
	Scores      []ScorePair
	Percentages []ScorePair
	TopThree    []Category
	TopTwoCode  string
	PersonaName string
}

// BuildProfile normalizes a possibly partial score vector against the bank's
// bounds and derives the ranked profile. displayNames supplies the
// human-readable category names used for the persona label; it is injected so
// tests can run against a fixed table.
//
// Ordering is descending by total with ties broken by ascending category
// label, which keeps the output deterministic.
func BuildProfile(scores ScoreVector, bank Bank, displayNames map[Category]string) UserProfile {
	pairs := make([]ScorePair, 0, len(scores))
	for _, c := range Categories {
		if v, ok := scores[c]; ok {
			pairs = append(pairs, ScorePair{Category: c, Value: v})
		}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		if pairs[i].Value != pairs[j].Value {
			return pairs[i].Value > pairs[j].Value
		}
		return pairs[i].Category < pairs[j].Category
	})

	minScore := bank.MinScore()
	maxScore := bank.MaxScore()
	span := maxScore - minScore

	percentages := make([]ScorePair, 0, len(pairs))
	for _, p := range pairs {
		pct := 0
		if span > 0 {
			pct = int(math.Round(float64(p.Value-minScore) / float64(span) * 100))
		}
		percentages = append(percentages, ScorePair{Category: p.Category, Value: clampInt(pct, 0, 100)})
	}

	topThree := make([]Category, 0, 3)
	for i := 0; i < len(pairs) && i < 3; i++ {
		topThree = append(topThree, pairs[i].Category)
	}

	profile := UserProfile{
		Scores:      pairs,
		Percentages: percentages,
		TopThree:    topThree,
	}

	if len(topThree) < 2 {
		profile.TopTwoCode = ""
		profile.PersonaName = PersonaIncomplete
		return profile
	}

	profile.TopTwoCode = string(topThree[0]) + string(topThree[1])

	dominant := personaAlias(displayName(displayNames, topThree[0]))
	secondary := strings.TrimPrefix(personaAlias(displayName(displayNames, topThree[1])), "Si ")
	profile.PersonaName = dominant + " yang " + secondary

	return profile
}

func displayName(names map[Category]string, c Category) string {
	if names != nil {
		if n, ok := names[c]; ok && n != "" {
			return n
		}
	}
	return string(c)
}

// personaAlias extracts the persona form of a display name: the parenthetical
// localized alias when present, otherwise the first word of the primary name.
func personaAlias(name string) string {
	open := strings.Index(name, "(")
	if open >= 0 {
		if close := strings.Index(name[open:], ")"); close > 0 {
			alias := strings.TrimSpace(name[open+1 : open+close])
			if alias != "" {
				return alias
			}
		}
	}
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return name
	}
	return fields[0]
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
