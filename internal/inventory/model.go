package inventory

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	MinStock    int     `json:"minStock"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Patch carries partial product updates; nil fields are left untouched.
type Patch struct {
	Name        *string
	Category    *string
	Price       *float64
	Stock       *int
	MinStock    *int
	Description *string
	ImageURL    *string
}

// Filter narrows product listings for the storefront.
type Filter struct {
	Search      string
	Category    string
	LikedIDs    []string // only applied when Category is "liked"
	OnlyInStock bool
}

const (
	CategoryAll   = "all"
	CategoryLiked = "liked"
)
