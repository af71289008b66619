package model

// CreateFavoriteDTO represents the request body for adding a favorite city
type CreateFavoriteDTO struct {
	City string `json:"city" example:"London"`
}
