package models

type RouteRequest struct {
	Origin      string `json:"origin" form:"origin" binding:"required"`
	Destination string `json:"destination" form:"destination" binding:"required"`
	Strategy    string `json:"strategy,omitempty" form:"strategy"`
}
