package app

import (
	"strings"

	"github.com/google/uuid"

	"monastery_tours/internal/domain"
	"monastery_tours/internal/shared"
)

const (
	justNow          = "Just now"
	submitRejectText = "Please fill out all required fields and give a rating."
)

// Feed is one viewer's community review list. It is not safe for concurrent
// use; Session serializes access.
type Feed struct {
	reviews []domain.Review
	newID   func() string
}

func NewFeed(seed []domain.Review) *Feed {
	rs := make([]domain.Review, len(seed))
	for i, r := range seed {
		rs[i] = r.Clone()
	}
	return &Feed{reviews: rs, newID: uuid.NewString}
}

// Filter returns the reviews whose author category matches c, in feed order.
func (f *Feed) Filter(c domain.Category) []domain.Review {
	out := make([]domain.Review, 0, len(f.reviews))
	for _, r := range f.reviews {
		if c == domain.CategoryAll || r.Author.Category == c {
			out = append(out, r.Clone())
		}
	}
	return out
}

// CategoryCounts backs the filter labels: "all" plus one entry per category.
func (f *Feed) CategoryCounts() map[domain.Category]int {
	out := map[domain.Category]int{domain.CategoryAll: len(f.reviews)}
	for _, c := range domain.Categories {
		out[c] = 0
	}
	for _, r := range f.reviews {
		out[r.Author.Category]++
	}
	return out
}

func (f *Feed) index(id string) int {
	for i, r := range f.reviews {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// ToggleLike flips the viewer's like. It reports the updated review and
// whether id was found.
func (f *Feed) ToggleLike(id string) (domain.Review, bool) {
	i := f.index(id)
	if i < 0 {
		return domain.Review{}, false
	}
	r := f.reviews[i].Clone()
	if r.LikedByUser {
		r.Likes = max(0, r.Likes-1)
	} else {
		r.Likes++
	}
	r.LikedByUser = !r.LikedByUser
	f.reviews[i] = r
	return r.Clone(), true
}

// Get returns a copy of the review with the given id.
func (f *Feed) Get(id string) (domain.Review, bool) {
	i := f.index(id)
	if i < 0 {
		return domain.Review{}, false
	}
	return f.reviews[i].Clone(), true
}

// AddComment appends the trimmed text. Blank text leaves the review as is.
func (f *Feed) AddComment(id, text string) (domain.Review, bool) {
	i := f.index(id)
	if i < 0 {
		return domain.Review{}, false
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return f.reviews[i].Clone(), true
	}
	r := f.reviews[i].Clone()
	r.Comments++
	r.UserComments = append(r.UserComments, text)
	f.reviews[i] = r
	return r.Clone(), true
}

func validateNewReview(in domain.NewReviewFields) (domain.NewReviewFields, error) {
	out := domain.NewReviewFields{
		Name:   strings.TrimSpace(in.Name),
		Site:   strings.TrimSpace(in.Site),
		Title:  strings.TrimSpace(in.Title),
		Body:   strings.TrimSpace(in.Body),
		Rating: in.Rating,
	}
	if out.Name == "" || out.Site == "" || out.Title == "" || out.Body == "" || out.Rating < 1 || out.Rating > 5 {
		return domain.NewReviewFields{}, &domain.ValidationError{Message: submitRejectText}
	}
	return out, nil
}

// Submit validates the form and prepends a fresh review carrying images.
func (f *Feed) Submit(in domain.NewReviewFields, images []string) (domain.Review, error) {
	fields, err := validateNewReview(in)
	if err != nil {
		return domain.Review{}, err
	}
	r := domain.Review{
		ID:           f.newID(),
		Author:       domain.Author{Name: fields.Name, Avatar: shared.PlaceholderAvatar, Category: domain.CategoryVisitor},
		Rating:       fields.Rating,
		Title:        fields.Title,
		Body:         fields.Body,
		Images:       append([]string{}, images...),
		Site:         fields.Site,
		Date:         justNow,
		Verified:     true,
		UserComments: []string{},
	}
	f.reviews = append([]domain.Review{r}, f.reviews...)
	return r.Clone(), nil
}

func (f *Feed) Len() int { return len(f.reviews) }
