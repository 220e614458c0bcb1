package models

const (
	ChargeIncomplete = "INCOMPLETE"
	ChargeComplete   = "COMPLETE"
)

type UpgradeCharge struct {
	Id                 string `json:"id"`
	AccountId          string `json:"account_id"`
	Cents              int    `json:"cents"`
	Description        string `json:"description"`
	ConfirmationNumber string `json:"confirmation_number"`
}
