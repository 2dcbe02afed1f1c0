package entity

import "time"

type Book struct {
	BookID        string    `json:"bookid"`
	Title         string    `json:"title"`
	Price         float64   `json:"price"`
	Image         string    `json:"image"`
	InfoLink      string    `json:"infolink"`
	PreviewLink   string    `json:"previewlink"`
	RatingsCount  int       `json:"ratingscount"`
	PublishedDate time.Time `json:"publisheddate"`
	PublisherID   int       `json:"publisherid"`
}

type Publisher struct {
	PublisherID   int    `json:"publisherid"`
	PublisherName string `json:"publishername"`
}

type Category struct {
	CategoryID int    `json:"categoryid"`
	Genre      string `json:"genre"`
}
