package model

type Brand struct {
	BaseModel
	Name        string  `db:"name" json:"name"`
	Slug        string  `db:"slug" json:"slug"`
	LogoURL     *string `db:"logo_url" json:"logo_url"`
	Description *string `db:"description" json:"description"`
	SortOrder   int     `db:"sort_order" json:"sort_order"`
	IsActive    bool    `db:"is_active" json:"is_active"`
}
