package email

// Email represents an outgoing message.
type Email struct {
	From     string
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// BookingConfirmationData feeds the booking confirmation template.
type BookingConfirmationData struct {
	Email        string
	Name         string
	StartingDate string
	EndingDate   string
}
