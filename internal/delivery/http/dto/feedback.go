package dto

type FeedbackRequest struct {
	PersonaName        string   `json:"persona_name"`
	TopThree           []string `json:"top_three"`
	TopMajors          []string `json:"top_majors"`
	TopCareers         []string `json:"top_careers"`
	Accuracy           int      `json:"accuracy"`
	Satisfaction       int      `json:"satisfaction"`
	MostInteresting    string   `json:"most_interesting"`
	AdditionalComments string   `json:"additional_comments"`
}

type FeedbackResponse struct {
	ID string `json:"id"`
}

type PopularRecommendationResponse struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type FeedbackAnalyticsResponse struct {
	TotalFeedback   int64                           `json:"total_feedback"`
	AvgAccuracy     float64                         `json:"avg_accuracy"`
	AvgSatisfaction float64                         `json:"avg_satisfaction"`
	PopularMajors   []PopularRecommendationResponse `json:"popular_majors"`
	PopularCareers  []PopularRecommendationResponse `json:"popular_careers"`
}
