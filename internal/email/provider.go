package email

// Provider defines the outgoing mail interface. Callers treat delivery as
// best-effort; failures are logged and never surfaced to the client.
type Provider interface {
	// Send delivers a prepared email message.
	Send(email *Email) error

	// SendBookingConfirmation renders and delivers the booking
	// confirmation notification to the renter.
	SendBookingConfirmation(data BookingConfirmationData) error

	// Validate checks the provider configuration.
	Validate() error
}
