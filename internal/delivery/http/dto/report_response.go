package dto

type ScoreEntryResponse struct {
	Category   string `json:"category"`
	Value      int    `json:"value"`
	Percentage int    `json:"percentage"`
}

type ProfileResponse struct {
	Scores      []ScoreEntryResponse `json:"scores"`
	TopThree    []string             `json:"top_three"`
	TopTwoCode  string               `json:"top_two_code"`
	PersonaName string               `json:"persona_name"`
}

type RecommendationResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Subcategory     string `json:"subcategory"`
	MatchedType     string `json:"matched_type"`
	MatchScore      int    `json:"match_score"`
	ConfidenceScore int    `json:"confidence_score"`
	Reasoning       string `json:"reasoning"`
}

type CuratedResponse struct {
	TopPicks     map[string]RecommendationResponse   `json:"top_picks"`
	Alternatives map[string][]RecommendationResponse `json:"alternatives"`
	TotalCount   int                                 `json:"total_count"`
}

type ReportResponse struct {
	Profile    ProfileResponse `json:"profile"`
	Majors     CuratedResponse `json:"majors"`
	Careers    CuratedResponse `json:"careers"`
	Motivation string          `json:"motivation"`
}
