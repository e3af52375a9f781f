package content

import "time"

// Category groups FAQs for display. Slug is not guaranteed unique.
type Category struct {
	ID    string `json:"id" bson:"id"`
	Name  string `json:"name" bson:"name"`
	Slug  string `json:"slug" bson:"slug"`
	Order int    `json:"order" bson:"order"`
}

// FAQ is a question/answer pair; Answer holds rich HTML. Order is scoped to
// the owning category.
type FAQ struct {
	ID         string    `json:"id" bson:"id"`
	CategoryID string    `json:"categoryId" bson:"categoryId"`
	Question   string    `json:"question" bson:"question"`
	Answer     string    `json:"answer" bson:"answer"`
	Order      int       `json:"order" bson:"order"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updatedAt"`
}

// FeaturedCard is a promotional tile on the public home page.
type FeaturedCard struct {
	ID          string `json:"id" bson:"id"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Icon        string `json:"icon" bson:"icon"`
	Link        string `json:"link" bson:"link"`
	Color       string `json:"color" bson:"color"`
	Order       int    `json:"order" bson:"order"`
}

type FooterSection struct {
	ID    string           `json:"id" bson:"id"`
	Title string           `json:"title" bson:"title"`
	Order int              `json:"order" bson:"order"`
	Items []FooterLinkItem `json:"items" bson:"items"`
}

type FooterLinkItem struct {
	ID    string `json:"id" bson:"id"`
	Label string `json:"label" bson:"label"`
	Href  string `json:"href" bson:"href"`
	Order int    `json:"order" bson:"order"`
}

type Settings struct {
	SupportLink  string `json:"supportLink" bson:"supportLink"`
	SupportLabel string `json:"supportLabel" bson:"supportLabel"`
}

// Document is the whole persisted content tree. It is loaded and written as
// one unit. A nil FeaturedCards or FooterLinks slice means the array is absent
// from storage, which differs from an empty one for deletes.
type Document struct {
	Categories    []Category      `json:"categories" bson:"categories"`
	FAQs          []FAQ           `json:"faqs" bson:"faqs"`
	FeaturedCards []FeaturedCard  `json:"featuredCards" bson:"featuredCards"`
	FooterLinks   []FooterSection `json:"footerLinks" bson:"footerLinks"`
	Settings      *Settings       `json:"settings,omitempty" bson:"settings,omitempty"`
}

// NewDocument returns an initialized, empty content tree.
func NewDocument() *Document {
	return &Document{
		Categories:    []Category{},
		FAQs:          []FAQ{},
		FeaturedCards: []FeaturedCard{},
		FooterLinks:   []FooterSection{},
	}
}

// CategoryWithFAQs is the read-time join served by the grouped listing.
type CategoryWithFAQs struct {
	Category
	FAQs []FAQ `json:"faqs"`
}
