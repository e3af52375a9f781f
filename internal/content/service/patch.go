package service

// Create inputs. Required fields are validated by the corresponding Create*
// method; JSON names match the public API.

type CategoryInput struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type FAQInput struct {
	CategoryID string `json:"categoryId"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
}

type FeaturedCardInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Link        string `json:"link"`
	Color       string `json:"color"`
}

type FooterSectionInput struct {
	Title string `json:"title"`
}

type FooterItemInput struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Patches. A nil field was omitted by the caller. String fields that are
// present but empty are ignored as well, so an update can never clear a
// value; Order applies whenever it is present, zero included.

type CategoryPatch struct {
	Name  *string `json:"name"`
	Slug  *string `json:"slug"`
	Order *int    `json:"order"`
}

type FAQPatch struct {
	CategoryID *string `json:"categoryId"`
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Order      *int    `json:"order"`
}

type FeaturedCardPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Link        *string `json:"link"`
	Color       *string `json:"color"`
	Order       *int    `json:"order"`
}

type FooterSectionPatch struct {
	Title *string `json:"title"`
	Order *int    `json:"order"`
}

type FooterItemPatch struct {
	Label *string `json:"label"`
	Href  *string `json:"href"`
	Order *int    `json:"order"`
}

type SettingsPatch struct {
	SupportLink  *string `json:"supportLink"`
	SupportLabel *string `json:"supportLabel"`
}

// ReorderItem assigns a new order to one FAQ.
type ReorderItem struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

func applyString(dst *string, v *string) {
	if v != nil && *v != "" {
		*dst = *v
	}
}

func applyOrder(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
