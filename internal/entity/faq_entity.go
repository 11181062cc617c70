package entity

import "time"

type FaqCategory struct {
	Id        int       `json:"id"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sortOrder"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Faqs      []*Faq    `json:"faqs,omitempty"`
}

// Faq has no stored slug; public URLs are derived from Category.Name and Question.
type Faq struct {
	Id         int          `json:"id"`
	CategoryId int          `json:"categoryId"`
	Question   string       `json:"question"`
	Answer     string       `json:"answer"`
	SortOrder  int          `json:"sortOrder"`
	IsActive   bool         `json:"isActive"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
	Category   *FaqCategory `json:"category,omitempty"`
}

// FaqSection is the page-builder block that renders FAQs, optionally limited to one category.
type FaqSection struct {
	Id         int          `json:"id"`
	Heading    string       `json:"heading"`
	Subheading *string      `json:"subheading"`
	CategoryId *int         `json:"categoryId"`
	IsActive   bool         `json:"isActive"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
	Category   *FaqCategory `json:"category,omitempty"`
	Faqs       []*Faq       `json:"faqs,omitempty"`
}
