package packets

import "github.com/Nixie-Tech-LLC/takmir/internal/model"

// returned by /methods
type MethodsResponse struct {
	Default int                       `json:"default"`
	Methods []model.CalculationMethod `json:"methods"`
}
