package dto

// UpsertCategoryInput is shared by create and update; the slug is
// derived server-side and never accepted from the caller.
type UpsertCategoryInput struct {
	Name             string  `json:"name" binding:"required"`
	Description      *string `json:"description"`
	ParentCategoryID *string `json:"parent_category_id"`
	SortOrder        int     `json:"sort_order"`
}
