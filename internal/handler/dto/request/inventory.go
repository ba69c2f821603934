package request

type ConsumeItemRequest struct {
	Quantity *int32 `json:"quantity" binding:"omitempty,min=1"`
}

// GetQuantity defaults an omitted quantity to 1.
func (r *ConsumeItemRequest) GetQuantity() int32 {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

type PageQuery struct {
	Page  int32 `form:"page,default=1" binding:"omitempty,min=1"`
	Limit int32 `form:"limit,default=20" binding:"omitempty,min=1"`
}
