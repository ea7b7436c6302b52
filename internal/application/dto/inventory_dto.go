package dto

// DamageRequest registro de quebra/perda.
type DamageRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"min=1"`
	Reason    string `json:"reason" validate:"required"`
}
