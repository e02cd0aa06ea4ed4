package riasec

import "testing"

func curatedFixture(id, tag string, confidence, match int) MatchResult {
	return MatchResult{
		ID:              id,
		Name:            id,
		Subcategory:     tag,
		MatchedType:     Realistic,
		MatchScore:      match,
		ConfidenceScore: confidence,
	}
}

func curatedItemCount(c CuratedRecommendations) int {
	n := len(c.TopPicks)
	for _, items := range c.Alternatives {
		n += len(items)
	}
	return n
}

func TestCurate_SplitsTopPicksAndAlternatives(t *testing.T) {
	matches := []MatchResult{
		curatedFixture("T1", "Teknologi", 95, 90),
		curatedFixture("T2", "Teknologi", 90, 85),
		curatedFixture("K1", "Kesehatan", 85, 80),
		curatedFixture("S1", "Seni", 80, 75),
		curatedFixture("B1", "Bisnis", 70, 70),
		curatedFixture("B2", "Bisnis", 65, 65),
	}

	out := Curate(matches)

	if out.TotalCount != 6 {
		t.Fatalf("expected totalCount 6, got %d", out.TotalCount)
	}
	if len(out.TopPicks) != 3 {
		t.Fatalf("expected 3 top-pick groups, got %d", len(out.TopPicks))
	}

	// Groups by average confidence: Teknologi 92.5, Kesehatan 85, Seni 80,
	// Bisnis 67.5. Top three groups each contribute only their best item.
	for _, tag := range []string{"Teknologi", "Kesehatan", "Seni"} {
		if _, ok := out.TopPicks[tag]; !ok {
			t.Fatalf("expected %s in topPicks", tag)
		}
	}
	if out.TopPicks["Teknologi"].ID != "T1" {
		t.Fatalf("expected group best item T1, got %s", out.TopPicks["Teknologi"].ID)
	}

	alt, ok := out.Alternatives["Bisnis"]
	if !ok {
		t.Fatalf("expected Bisnis in alternatives")
	}
	if len(alt) != 2 {
		t.Fatalf("expected full capped list for alternative group, got %d", len(alt))
	}
	if alt[0].ID != "B1" {
		t.Fatalf("alternative group must be confidence-ordered, got %s first", alt[0].ID)
	}

	if curatedItemCount(out) > out.TotalCount {
		t.Fatalf("curated items (%d) exceed totalCount (%d)", curatedItemCount(out), out.TotalCount)
	}
}

func TestCurate_CapsGroupsAtFour(t *testing.T) {
	matches := []MatchResult{
		curatedFixture("X1", "Teknologi", 95, 95),
		curatedFixture("X2", "Teknologi", 90, 90),
		curatedFixture("X3", "Teknologi", 85, 85),
		curatedFixture("X4", "Teknologi", 80, 80),
		curatedFixture("X5", "Teknologi", 75, 75),
		curatedFixture("X6", "Teknologi", 70, 70),
		curatedFixture("A1", "Seni", 60, 60),
		curatedFixture("A2", "Seni", 55, 55),
		curatedFixture("B1", "Bisnis", 50, 50),
		curatedFixture("H1", "Kesehatan", 45, 45),
		curatedFixture("H2", "Kesehatan", 40, 40),
		curatedFixture("H3", "Kesehatan", 35, 35),
		curatedFixture("H4", "Kesehatan", 30, 30),
		curatedFixture("H5", "Kesehatan", 25, 25),
	}

	out := Curate(matches)

	if out.TotalCount != len(matches) {
		t.Fatalf("totalCount must be pre-truncation length, got %d", out.TotalCount)
	}

	// Kesehatan ranks fourth, so it lands in alternatives with its capped
	// list of four; the dropped fifth item must be the weakest one.
	alt := out.Alternatives["Kesehatan"]
	if len(alt) != maxGroupSize {
		t.Fatalf("expected group cap of %d, got %d", maxGroupSize, len(alt))
	}
	for _, it := range alt {
		if it.ID == "H5" {
			t.Fatalf("weakest item must be truncated by the cap")
		}
	}
}

func TestCurate_FewerThanThreeGroups(t *testing.T) {
	matches := []MatchResult{
		curatedFixture("T1", "Teknologi", 90, 90),
		curatedFixture("S1", "Seni", 80, 80),
	}

	out := Curate(matches)

	if len(out.TopPicks) != 2 {
		t.Fatalf("expected all groups in topPicks, got %d", len(out.TopPicks))
	}
	if len(out.Alternatives) != 0 {
		t.Fatalf("expected no alternatives, got %d", len(out.Alternatives))
	}
}

func TestCurate_EmptyInput(t *testing.T) {
	out := Curate(nil)

	if out.TotalCount != 0 || len(out.TopPicks) != 0 || len(out.Alternatives) != 0 {
		t.Fatalf("expected empty curation, got %+v", out)
	}
}

func TestCurate_MissingTagBucketsAsUngrouped(t *testing.T) {
	out := Curate([]MatchResult{curatedFixture("X1", "", 90, 90)})

	if _, ok := out.TopPicks[UngroupedTag]; !ok {
		t.Fatalf("expected untagged result under %q, got %+v", UngroupedTag, out.TopPicks)
	}
}
