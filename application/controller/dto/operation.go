package dto

import "io"

type CreateOperationDTO struct {
	Type        string  `json:"type" validate:"required,operation_type"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

type ValidateOperationDTO struct {
	Comment *string `json:"comment" validate:"omitempty,max=500"`
}

type ForceRejectDTO struct {
	Comment string `json:"comment" validate:"required,max=500"`
}

// UploadDocumentDTO carries a justification document picked apart
// from a multipart form by the router layer.
type UploadDocumentDTO struct {
	OperationID string
	FileName    string
	File        io.Reader
}
