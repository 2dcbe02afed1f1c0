package entity

type Review struct {
	BookID      string  `json:"bookid"`
	UserID      string  `json:"userid"`
	Score       float64 `json:"score"`
	Helpfulness float64 `json:"helpfulness"`
	Summary     string  `json:"summary"`
}
