package domain

import "time"

// Post is an authored piece of content. AuthorID is fixed at creation and
// never reassigned; Cover is an opaque reference into the asset store and
// may be empty.
type Post struct {
	ID        string
	Title     string
	Summary   string
	Content   string
	Cover     string
	AuthorID  string
	CreatedAt time.Time
	UpdatedAt time.Time

	// AuthorUsername is joined in on reads for client convenience. It is
	// never written back.
	AuthorUsername string
}

// PostPatch carries a partial update: nil fields keep their stored value.
type PostPatch struct {
	Title   *string
	Summary *string
	Content *string
	Cover   *string
}

// Apply overwrites only the provided fields.
func (p PostPatch) Apply(post *Post) {
	if p.Title != nil {
		post.Title = *p.Title
	}
	if p.Summary != nil {
		post.Summary = *p.Summary
	}
	if p.Content != nil {
		post.Content = *p.Content
	}
	if p.Cover != nil {
		post.Cover = *p.Cover
	}
}
