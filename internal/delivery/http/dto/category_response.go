package dto

type CategoryResponse struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Careers     []string `json:"careers"`
	Majors      []string `json:"majors"`
}
