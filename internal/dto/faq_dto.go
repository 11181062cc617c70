package dto

type FaqCategoryRequest struct {
	Id        int     `json:"id"`
	Name      *string `json:"name" validate:"omitempty,min=1,max=255"`
	SortOrder *int    `json:"sortOrder" validate:"omitempty,gte=0"`
	IsActive  *bool   `json:"isActive"`
}

type FaqRequest struct {
	Id         int     `json:"id"`
	CategoryId *int    `json:"categoryId" validate:"omitempty,gt=0"`
	Question   *string `json:"question" validate:"omitempty,min=1"`
	Answer     *string `json:"answer" validate:"omitempty,min=1"`
	SortOrder  *int    `json:"sortOrder" validate:"omitempty,gte=0"`
	IsActive   *bool   `json:"isActive"`
}

// FaqSectionRequest: categoryId 0 clears the category filter.
type FaqSectionRequest struct {
	Id         int     `json:"id"`
	Heading    *string `json:"heading" validate:"omitempty,min=1,max=255"`
	Subheading *string `json:"subheading"`
	CategoryId *int    `json:"categoryId" validate:"omitempty,gte=0"`
	IsActive   *bool   `json:"isActive"`
}

// FaqDetailResponse is the public single-question page.
type FaqDetailResponse struct {
	Category string       `json:"category"`
	Question string       `json:"question"`
	Answer   string       `json:"answer"`
	Related  []*FaqLink   `json:"related"`
	Seo      *SeoMetadata `json:"seo"`
}

type FaqLink struct {
	Question string `json:"question"`
	Path     string `json:"path"`
}
