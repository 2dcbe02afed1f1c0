package entity

type Author struct {
	AuthorID int    `json:"authorid"`
	Name     string `json:"name"`
}
