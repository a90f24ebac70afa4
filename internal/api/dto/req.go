package dto

// LoginRequest carries the credentials posted to /auth/login. The tenant is
// derived from the email's domain, never sent explicitly.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@acme.com"`
	Password string `json:"password" binding:"required" example:"secret"`
}

type CreateRewardRequest struct {
	Title       string `json:"title" binding:"required" example:"Campus Hoodie"`
	Description string `json:"description" example:"Limited edition hoodie"`
	Coins       int    `json:"coins" binding:"required,gt=0" example:"500"`
	ImageURL    string `json:"image_url" example:"/uploads/rewards/hoodie.png"`
}

type UpdateRewardRequest struct {
	Title       string `json:"title" binding:"required" example:"Campus Hoodie"`
	Description string `json:"description" example:"Limited edition hoodie"`
	Coins       int    `json:"coins" binding:"required,gt=0" example:"500"`
	ImageURL    string `json:"image_url" example:"/uploads/rewards/hoodie.png"`
}
