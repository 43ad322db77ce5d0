package sms

// Message SMS сообщение
type Message struct {
	To   string
	Body string
}

// Config параметры Twilio
type Config struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}
