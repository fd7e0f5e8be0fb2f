package request

// UpdateHeaderRequest sets the bill header fields on a session
type UpdateHeaderRequest struct {
	CustomerName string `json:"customer_name" binding:"max=255"`
	HasteName    string `json:"haste_name" binding:"max=255"`
}

// UpdateItemFieldRequest updates one field of a billing row
type UpdateItemFieldRequest struct {
	Field string `json:"field" binding:"required,oneof=name quantity price total"`
	Value string `json:"value" binding:"max=255"`
}

// CommitFieldRequest reports that the user committed a field (pressed Enter)
type CommitFieldRequest struct {
	Field string `json:"field" binding:"required,oneof=name quantity price total"`
}
