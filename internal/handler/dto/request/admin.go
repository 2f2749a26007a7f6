package request

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending accepted denied"`
}
