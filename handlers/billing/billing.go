package billing

import (
	models "studyio.com/narrator/models"
)

type BillingHandler interface {
	ChargeCustomer(account *models.Account, charge *models.UpgradeCharge) error
}

type Billing struct {
	RetryAttempts int
}
