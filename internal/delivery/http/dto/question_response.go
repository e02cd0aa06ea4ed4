package dto

type QuestionResponse struct {
	ID       int    `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category"`
}

type QuestionBankResponse struct {
	Mode      string             `json:"mode"`
	Questions []QuestionResponse `json:"questions"`
}
