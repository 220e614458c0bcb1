package models

type Email struct {
	Args      map[string]string `json:"args"`
	EmailType string            `json:"email_type"`
	Subject   string            `json:"subject"`
	To        string            `json:"to"`
	Body      string            `json:"body"`
}
