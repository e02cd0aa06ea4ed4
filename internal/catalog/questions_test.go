package catalog

import (
	"testing"

	"panduan-karier/internal/domain/riasec"
)

func TestFullQuestionBankIntegrity(t *testing.T) {
	bank := FullQuestionBank()

	if bank.Bounds != riasec.FullBank {
		t.Fatalf("unexpected bounds: %+v", bank.Bounds)
	}

	perCategory := map[riasec.Category]int{}
	seenIDs := map[int]struct{}{}
	for _, q := range bank.Questions {
		if q.Text == "" {
			t.Fatalf("question %d has empty text", q.ID)
		}
		if _, ok := riasec.ParseCategory(string(q.Category)); !ok {
			t.Fatalf("question %d has invalid category %q", q.ID, q.Category)
		}
		if _, dup := seenIDs[q.ID]; dup {
			t.Fatalf("duplicate question id %d", q.ID)
		}
		seenIDs[q.ID] = struct{}{}
		perCategory[q.Category]++
	}

	for _, c := range riasec.Categories {
		if perCategory[c] != bank.Bounds.QuestionsPerCategory {
			t.Fatalf("category %s: expected %d questions, got %d", c, bank.Bounds.QuestionsPerCategory, perCategory[c])
		}
	}
}

func TestQuickQuestionBankIsStrategicSubset(t *testing.T) {
	full := FullQuestionBank()
	quick := QuickQuestionBank()

	if quick.Bounds != riasec.QuickBank {
		t.Fatalf("unexpected bounds: %+v", quick.Bounds)
	}

	fullByID := map[int]Question{}
	for _, q := range full.Questions {
		fullByID[q.ID] = q
	}

	perCategory := map[riasec.Category]int{}
	for _, q := range quick.Questions {
		orig, ok := fullByID[q.ID]
		if !ok {
			t.Fatalf("quick question %d not present in full bank", q.ID)
		}
		if orig.Text != q.Text || orig.Category != q.Category {
			t.Fatalf("quick question %d diverges from full bank", q.ID)
		}
		perCategory[q.Category]++
	}

	for _, c := range riasec.Categories {
		if perCategory[c] != quick.Bounds.QuestionsPerCategory {
			t.Fatalf("category %s: expected %d quick questions, got %d", c, quick.Bounds.QuestionsPerCategory, perCategory[c])
		}
	}

	// The two banks normalize to the same displayed scale.
	if quick.Bounds.MinScore() != full.Bounds.MinScore() || quick.Bounds.MaxScore() != full.Bounds.MaxScore() {
		t.Fatalf("quick bounds [%d,%d] must match full bounds [%d,%d]",
			quick.Bounds.MinScore(), quick.Bounds.MaxScore(), full.Bounds.MinScore(), full.Bounds.MaxScore())
	}
}

func TestDisplayNamesCoverAllCategories(t *testing.T) {
	names := DisplayNames()
	for _, c := range riasec.Categories {
		if names[c] == "" {
			t.Fatalf("missing display name for %s", c)
		}
	}
}

func TestMotivationsHaveDefault(t *testing.T) {
	m := Motivations()
	if m[riasec.MotivationDefaultKey] == "" {
		t.Fatalf("missing DEFAULT motivation")
	}
	for code := range m {
		if code == riasec.MotivationDefaultKey {
			continue
		}
		if len(code) != 2 {
			t.Fatalf("motivation code %q is not a two-letter pair", code)
		}
	}
}
