package booking

type CreateBookingRequest struct {
	Date string `json:"date" validate:"required"`
	From string `json:"from" validate:"required"`
	To   string `json:"to" validate:"required"`
}
