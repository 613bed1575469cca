package model

type Category struct {
	BaseModel
	Name             string     `db:"name" json:"name"`
	Slug             string     `db:"slug" json:"slug"`
	Description      *string    `db:"description" json:"description"`
	ParentCategoryID *string    `db:"parent_category_id" json:"parent_category_id"` // Nullable, self-referential
	SortOrder        int        `db:"sort_order" json:"sort_order"`
	IsActive         bool       `db:"is_active" json:"is_active"`
	Parent           *Category  `db:"-" json:"parent,omitempty"`
	SubCategories    []Category `db:"-" json:"sub_categories,omitempty"` // Derived by lookup, not a live back-pointer
}
