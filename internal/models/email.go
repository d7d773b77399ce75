package models

// EmailSender identifies the author of an email.
type EmailSender struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}

// Email is an inbox entry.
type Email struct {
	ID          int         `json:"id"`
	From        EmailSender `json:"from"`
	Subject     string      `json:"subject"`
	Preview     string      `json:"preview"`
	Date        string      `json:"date"`
	Read        bool        `json:"read"`
	Starred     bool        `json:"starred"`
	Important   bool        `json:"important"`
	Attachments bool        `json:"attachments"`
	Category    string      `json:"category"`
}
