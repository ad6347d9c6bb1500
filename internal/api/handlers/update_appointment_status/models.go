package update_appointment_status

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=planned rescheduled canceled done"`
}
