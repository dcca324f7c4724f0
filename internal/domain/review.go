package domain

type Category string

const (
	CategoryAll     Category = "all"
	CategoryVisitor Category = "visitor"
	CategoryLocal   Category = "local"
	CategoryMonk    Category = "monk"
)

// Categories lists the author partitions in filter-button order.
var Categories = []Category{CategoryVisitor, CategoryLocal, CategoryMonk}

func ParseCategory(s string) (Category, error) {
	if s == "" {
		return CategoryAll, nil
	}
	switch c := Category(s); c {
	case CategoryAll, CategoryVisitor, CategoryLocal, CategoryMonk:
		return c, nil
	}
	return "", ErrInvalidCategory
}

type Author struct {
	Name     string   `json:"name"`
	Avatar   string   `json:"avatar"`
	Category Category `json:"type"`
}

type Review struct {
	ID           string   `json:"id"`
	Author       Author   `json:"user"`
	Rating       int      `json:"rating"`
	Title        string   `json:"title"`
	Body         string   `json:"content"`
	Images       []string `json:"images"`
	Likes        int      `json:"likes"`
	Comments     int      `json:"comments"`
	Site         string   `json:"monastery"`
	Date         string   `json:"date"`
	Verified     bool     `json:"verified"`
	LikedByUser  bool     `json:"likedByUser"`
	UserComments []string `json:"userComments"`
}

// Clone returns a copy that shares no slices with r.
func (r Review) Clone() Review {
	out := r
	out.Images = cloneStrings(r.Images)
	out.UserComments = cloneStrings(r.UserComments)
	return out
}

// cloneStrings never returns nil, so empty lists encode as [] rather than null.
func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// NewReviewFields is the upload form as submitted by the viewer.
type NewReviewFields struct {
	Name   string `json:"name"`
	Site   string `json:"monastery"`
	Title  string `json:"title"`
	Body   string `json:"story"`
	Rating int    `json:"rating"`
}

// Photo is a session-local preview of an uploaded image.
type Photo struct {
	ID          string
	ContentType string
	Width       int
	Height      int
	Data        []byte
}
