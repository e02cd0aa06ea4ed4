package riasec

// Category is one of the six RIASEC interest dimensions. The set is closed;
// every other key seen in raw input is dropped at the boundary.
type Category string

const (
	Realistic     Category = "R"
	Investigative Category = "I"
	Artistic      Category = "A"
	Social        Category = "S"
	Enterprising  Category = "E"
	Conventional  Category = "C"
)

// Categories lists all dimensions in canonical RIASEC order. Iteration over
// this slice is the tie-break for dominant-category resolution.
var Categories = []Category{
	Realistic,
	Investigative,
	Artistic,
	Social,
	Enterprising,
	Conventional,
}

func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case Realistic, Investigative, Artistic, Social, Enterprising, Conventional:
		return Category(s), true
	}
	return "", false
}

func (c Category) String() string {
	return string(c)
}
