package model

// Category is one scrap pricing category. Reference data, independent of any
// session.
type Category struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	BasePrice   float64 `json:"base_price"`
	Unit        string  `json:"unit"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url,omitempty"`
}

type CategoriesResponse struct {
	Categories []Category `json:"categories"`
}

// PriceHistoryEntry is one past price point of a category.
type PriceHistoryEntry struct {
	Price     float64 `json:"price"`
	ChangedAt APITime `json:"changed_at"`
	Reason    string  `json:"reason"`
}

type PriceHistoryResponse struct {
	History []PriceHistoryEntry `json:"history"`
}
