package request

type CreateSectionRequest struct {
	Label       string `json:"label" binding:"required,max=255"`
	MaxCapacity int32  `json:"max_capacity" binding:"gte=0"`
}
