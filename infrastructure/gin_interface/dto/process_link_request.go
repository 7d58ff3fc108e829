package dto

type ProcessLinkRequest struct {
	URL string `form:"url" json:"url" binding:"required,url"`
}
