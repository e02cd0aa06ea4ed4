package riasec

import (
	"reflect"
	"testing"
)

var testDisplayNames = map[Category]string{
	Realistic:     "Realistic (Si Realistis)",
	Investigative: "Investigative (Si Pemikir)",
	Artistic:      "Artistic (Si Kreatif)",
	Social:        "Social (Si Penolong)",
	Enterprising:  "Enterprising (Si Pengusaha)",
	Conventional:  "Conventional (Si Teratur)",
}

func pctOf(p UserProfile, c Category) (int, bool) {
	for _, pair := range p.Percentages {
		if pair.Category == c {
			return pair.Value, true
		}
	}
	return 0, false
}

func TestBuildProfile_IdealScores(t *testing.T) {
	scores := ScoreVector{
		Realistic:     75,
		Investigative: 15,
		Artistic:      60,
		Social:        45,
		Enterprising:  30,
		Conventional:  20,
	}

	p := BuildProfile(scores, FullBank, testDisplayNames)

	if !reflect.DeepEqual(p.TopThree, []Category{Realistic, Artistic, Social}) {
		t.Fatalf("unexpected topThree: %v", p.TopThree)
	}
	if p.TopTwoCode != "RA" {
		t.Fatalf("expected topTwoCode RA, got %q", p.TopTwoCode)
	}
	if p.PersonaName != "Si Realistis yang Kreatif" {
		t.Fatalf("unexpected persona: %q", p.PersonaName)
	}

	want := map[Category]int{Realistic: 100, Artistic: 75, Social: 50, Enterprising: 25, Investigative: 0}
	for c, exp := range want {
		got, ok := pctOf(p, c)
		if !ok {
			t.Fatalf("missing percentage for %s", c)
		}
		if got != exp {
			t.Fatalf("percentage %s: expected %d, got %d", c, exp, got)
		}
	}
}

func TestBuildProfile_TieBreaksAlphabetically(t *testing.T) {
	scores := ScoreVector{
		Realistic:     60,
		Investigative: 20,
		Artistic:      70,
		Social:        30,
		Enterprising:  40,
		Conventional:  70,
	}

	p := BuildProfile(scores, FullBank, testDisplayNames)

	if !reflect.DeepEqual(p.TopThree, []Category{Artistic, Conventional, Realistic}) {
		t.Fatalf("unexpected topThree: %v", p.TopThree)
	}
	if p.TopTwoCode != "AC" {
		t.Fatalf("expected topTwoCode AC, got %q", p.TopTwoCode)
	}
	if p.PersonaName != "Si Kreatif yang Teratur" {
		t.Fatalf("unexpected persona: %q", p.PersonaName)
	}
}

func TestBuildProfile_SingleCategoryDegradesGracefully(t *testing.T) {
	p := BuildProfile(ScoreVector{Realistic: 75}, FullBank, testDisplayNames)

	if !reflect.DeepEqual(p.TopThree, []Category{Realistic}) {
		t.Fatalf("unexpected topThree: %v", p.TopThree)
	}
	if p.TopTwoCode != "" {
		t.Fatalf("expected empty topTwoCode, got %q", p.TopTwoCode)
	}
	if p.PersonaName != PersonaIncomplete {
		t.Fatalf("expected sentinel persona, got %q", p.PersonaName)
	}
}

func TestBuildProfile_EmptyVector(t *testing.T) {
	p := BuildProfile(ScoreVector{}, FullBank, testDisplayNames)

	if len(p.Scores) != 0 || len(p.Percentages) != 0 || len(p.TopThree) != 0 {
		t.Fatalf("expected empty profile, got %+v", p)
	}
	if p.TopTwoCode != "" || p.PersonaName != PersonaIncomplete {
		t.Fatalf("expected guard state, got code=%q persona=%q", p.TopTwoCode, p.PersonaName)
	}
}

func TestBuildProfile_ClampsOutOfRangeInput(t *testing.T) {
	p := BuildProfile(ScoreVector{Realistic: 200, Investigative: 3}, FullBank, testDisplayNames)

	if got, _ := pctOf(p, Realistic); got != 100 {
		t.Fatalf("expected clamp to 100, got %d", got)
	}
	if got, _ := pctOf(p, Investigative); got != 0 {
		t.Fatalf("expected clamp to 0, got %d", got)
	}
}

func TestBuildProfile_QuickBankMatchesFullBankScale(t *testing.T) {
	answers := []Answer{
		{QuestionID: 1, Category: Realistic, Value: 5},
		{QuestionID: 2, Category: Realistic, Value: 5},
		{QuestionID: 3, Category: Realistic, Value: 5},
		{QuestionID: 4, Category: Investigative, Value: 1},
		{QuestionID: 5, Category: Investigative, Value: 1},
		{QuestionID: 6, Category: Investigative, Value: 1},
	}

	scores := Aggregate(answers, QuickBank)
	if scores[Realistic] != 75 || scores[Investigative] != 15 {
		t.Fatalf("unexpected multiplied totals: %v", scores)
	}

	p := BuildProfile(scores, QuickBank, testDisplayNames)
	if got, _ := pctOf(p, Realistic); got != 100 {
		t.Fatalf("expected max answers to normalize to 100, got %d", got)
	}
	if got, _ := pctOf(p, Investigative); got != 0 {
		t.Fatalf("expected min answers to normalize to 0, got %d", got)
	}
}

func TestAggregate(t *testing.T) {
	answers := []Answer{
		{QuestionID: 1, Category: Realistic, Value: 4},
		{QuestionID: 2, Category: Realistic, Value: 3},
		{QuestionID: 3, Category: Social, Value: 5},
		{QuestionID: 4, Category: "X", Value: 5},
	}

	scores := Aggregate(answers, FullBank)
	if scores[Realistic] != 7 {
		t.Fatalf("expected R total 7, got %d", scores[Realistic])
	}
	if scores[Social] != 5 {
		t.Fatalf("expected S total 5, got %d", scores[Social])
	}
	if _, ok := scores[Artistic]; ok {
		t.Fatalf("unanswered category must stay absent")
	}
	if len(scores) != 2 {
		t.Fatalf("unknown category tag must be dropped, got %v", scores)
	}

	if got := Aggregate(nil, FullBank); len(got) != 0 {
		t.Fatalf("expected empty vector for empty answers, got %v", got)
	}
}
