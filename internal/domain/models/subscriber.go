package models

// Subscriber is a roster entry for the email delivery run. Timezone is only
// checked for presence here; an unknown zone fails that subscriber at send time.
type Subscriber struct {
	Name      string   `json:"name" validate:"required"`
	Email     string   `json:"email" validate:"required,email"`
	Timezone  string   `json:"timezone" validate:"required"`
	Exchanges []string `json:"exchanges" validate:"required,min=1,dive,required"`
}

// Email is one outbound message.
type Email struct {
	From    string
	To      string
	Subject string
	Text    string
	HTML    string
}
