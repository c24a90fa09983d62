package dto

// SendNotificationRequest fires up to two independent side effects: an email
// when Email is present, a persisted notification when UserID is present.
type SendNotificationRequest struct {
	UserID  string `json:"userId"`
	Email   string `json:"email" validate:"omitempty,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}
