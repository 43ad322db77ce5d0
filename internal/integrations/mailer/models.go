package mailer

// Message письмо клиенту
type Message struct {
	To      string
	ToName  string
	Subject string
	Text    string
	HTML    string // необязательно, по умолчанию Text
}

// Config параметры SendGrid
type Config struct {
	APIKey    string
	FromEmail string
	FromName  string
}
