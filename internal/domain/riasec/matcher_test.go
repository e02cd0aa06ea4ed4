package riasec

import "testing"

func testProfile(topThree []Category, pct map[Category]int) UserProfile {
	p := UserProfile{TopThree: topThree}
	for _, c := range Categories {
		if v, ok := pct[c]; ok {
			p.Percentages = append(p.Percentages, ScorePair{Category: c, Value: v})
		}
	}
	return p
}

func singleDominantItem(id string, dominant Category, weight int) ReferenceItem {
	w := Weights{}
	for _, c := range Categories {
		w[c] = 1
	}
	w[dominant] = weight
	return ReferenceItem{ID: id, Name: id, Profile: w}
}

func TestMatch_FiltersOnDominantCategory(t *testing.T) {
	profile := testProfile(
		[]Category{Artistic, Social, Enterprising},
		map[Category]int{Artistic: 90, Social: 80, Enterprising: 70},
	)

	items := []ReferenceItem{
		singleDominantItem("A1", Artistic, 9),
		singleDominantItem("A2", Artistic, 8),
		singleDominantItem("S1", Social, 9),
		singleDominantItem("E1", Enterprising, 9),
		singleDominantItem("R1", Realistic, 9),
	}

	results := Match(profile, items)

	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	for _, r := range results {
		if r.ID == "R1" {
			t.Fatalf("item with dominant category outside topThree must be excluded")
		}
		found := false
		for _, c := range profile.TopThree {
			if r.MatchedType == c {
				found = true
			}
		}
		if !found {
			t.Fatalf("result %s matchedType %s not in topThree", r.ID, r.MatchedType)
		}
	}
}

func TestMatch_ScoresStayInRange(t *testing.T) {
	profile := testProfile(
		[]Category{Realistic, Artistic, Social},
		map[Category]int{Realistic: 100, Artistic: 75, Social: 50, Enterprising: 25, Investigative: 0, Conventional: 8},
	)

	items := []ReferenceItem{
		singleDominantItem("R1", Realistic, 10),
		singleDominantItem("A1", Artistic, 2),
		singleDominantItem("S1", Social, 9),
	}

	for _, r := range Match(profile, items) {
		if r.MatchScore < 0 || r.MatchScore > 100 {
			t.Fatalf("matchScore out of range: %d", r.MatchScore)
		}
		if r.ConfidenceScore < confidenceMin || r.ConfidenceScore > confidenceMax {
			t.Fatalf("confidenceScore out of range: %d", r.ConfidenceScore)
		}
		if r.Reasoning == "" {
			t.Fatalf("expected reasoning text for %s", r.ID)
		}
	}
}

func TestMatch_ConfidenceTiers(t *testing.T) {
	// Percentages aligned with each item's scaled profile so every match
	// score lands above 80 and the rank tier is the only difference.
	profile := testProfile(
		[]Category{Realistic, Artistic, Social},
		map[Category]int{Realistic: 90, Artistic: 90, Social: 90, Investigative: 10, Enterprising: 10, Conventional: 10},
	)

	items := []ReferenceItem{
		singleDominantItem("R1", Realistic, 9),
		singleDominantItem("A1", Artistic, 9),
		singleDominantItem("S1", Social, 9),
	}

	results := Match(profile, items)
	byID := map[string]MatchResult{}
	for _, r := range results {
		byID[r.ID] = r
	}

	if byID["R1"].ConfidenceScore <= byID["A1"].ConfidenceScore {
		t.Fatalf("rank-1 match must outrank rank-2: %d vs %d", byID["R1"].ConfidenceScore, byID["A1"].ConfidenceScore)
	}
	if byID["A1"].ConfidenceScore <= byID["S1"].ConfidenceScore {
		t.Fatalf("rank-2 match must outrank rank-3: %d vs %d", byID["A1"].ConfidenceScore, byID["S1"].ConfidenceScore)
	}
}

func TestMatch_ConfidenceClampedAtNinetyFive(t *testing.T) {
	profile := testProfile(
		[]Category{Realistic, Artistic, Social},
		map[Category]int{Realistic: 90, Artistic: 10, Social: 10, Investigative: 10, Enterprising: 10, Conventional: 10},
	)

	// Near-perfect alignment: base 50 + rank-1 40 + high-match 10 would be
	// 100 without the clamp.
	w := Weights{Realistic: 9, Artistic: 1, Social: 1, Investigative: 1, Enterprising: 1, Conventional: 1}
	results := Match(profile, []ReferenceItem{{ID: "R1", Name: "R1", Profile: w}})

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].MatchScore <= 80 {
		t.Fatalf("fixture should produce a very high match, got %d", results[0].MatchScore)
	}
	if results[0].ConfidenceScore != confidenceMax {
		t.Fatalf("expected clamp at %d, got %d", confidenceMax, results[0].ConfidenceScore)
	}
}

func TestMatch_NoDuplicateIDs(t *testing.T) {
	profile := testProfile(
		[]Category{Investigative, Artistic, Conventional},
		map[Category]int{Investigative: 90, Artistic: 70, Conventional: 60},
	)

	items := []ReferenceItem{
		singleDominantItem("I1", Investigative, 9),
		singleDominantItem("I1", Investigative, 9),
		singleDominantItem("C1", Conventional, 9),
	}

	results := Match(profile, items)
	seen := map[string]int{}
	for _, r := range results {
		seen[r.ID]++
	}
	if seen["I1"] != 1 {
		t.Fatalf("expected I1 exactly once, got %d", seen["I1"])
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
}

func TestMatch_EmptyTopThree(t *testing.T) {
	results := Match(UserProfile{}, []ReferenceItem{singleDominantItem("R1", Realistic, 9)})
	if len(results) != 0 {
		t.Fatalf("expected no results for empty topThree, got %d", len(results))
	}
}

func TestMatch_DeterministicOrdering(t *testing.T) {
	profile := testProfile(
		[]Category{Realistic, Artistic, Social},
		map[Category]int{Realistic: 90, Artistic: 90, Social: 50},
	)

	// Two identically-scored items; id ascending breaks the tie.
	items := []ReferenceItem{
		singleDominantItem("R2", Realistic, 9),
		singleDominantItem("R1", Realistic, 9),
	}

	results := Match(profile, items)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].ID != "R1" || results[1].ID != "R2" {
		t.Fatalf("expected id-ascending tie-break, got %s then %s", results[0].ID, results[1].ID)
	}
}

func TestDominantCategory_TieBreaksCanonically(t *testing.T) {
	// A and S tie; canonical order R,I,A,S,E,C resolves to A.
	w := Weights{Realistic: 1, Investigative: 1, Artistic: 8, Social: 8, Enterprising: 1, Conventional: 1}
	if got := DominantCategory(w); got != Artistic {
		t.Fatalf("expected A, got %s", got)
	}

	if got := DominantCategory(Weights{}); got != Realistic {
		t.Fatalf("expected empty profile to resolve to R, got %s", got)
	}
}
