package dto

type UpsertBrandInput struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	LogoURL     *string `json:"logo_url"`
	SortOrder   int     `json:"sort_order"`
}
