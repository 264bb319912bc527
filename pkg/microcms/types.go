package microcms

import (
	"time"
)

// ListResponse is the envelope returned by list endpoints.
type ListResponse[T any] struct {
	Contents   []T `json:"contents"   yaml:"contents"`
	TotalCount int `json:"totalCount" yaml:"totalCount"`
	Offset     int `json:"offset"     yaml:"offset"`
	Limit      int `json:"limit"      yaml:"limit"`
}

// ContentMeta holds the system fields every content carries. Embed it in
// caller types; Decode squashes embedded structs.
type ContentMeta struct {
	ID          string     `json:"id,omitempty" yaml:"id,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"    yaml:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"    yaml:"updatedAt"`
	PublishedAt *time.Time `json:"publishedAt"  yaml:"publishedAt"`
	RevisedAt   *time.Time `json:"revisedAt"    yaml:"revisedAt"`
}

// IsPublished reports whether the content has ever been published. Drafts
// fetched with a draft key have no publishedAt.
func (m ContentMeta) IsPublished() bool {
	return m.PublishedAt != nil
}
