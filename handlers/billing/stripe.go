package billing

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/paymentintent"
	models "studyio.com/narrator/models"
)

type StripeBillingHandler struct {
	DBConn    *sql.DB
	StripeKey string
	Billing
}

func NewStripeBillingHandler(dbConn *sql.DB, stripeKey string, retryAttempts int) *StripeBillingHandler {
	item := &StripeBillingHandler{
		DBConn:    dbConn,
		StripeKey: stripeKey,
		Billing:   Billing{RetryAttempts: retryAttempts},
	}
	return item
}

// ChargeCustomer confirms an off-session payment intent against the account's
// primary card.
func (hndl *StripeBillingHandler) ChargeCustomer(account *models.Account, charge *models.UpgradeCharge) error {
	db := hndl.DBConn
	stripe.Key = hndl.StripeKey

	if account.StripeId == "" {
		return errors.New("account has no stripe customer")
	}

	var paymentMethodId string
	row := db.QueryRow("SELECT stripe_payment_method_id FROM account_cards WHERE account_id = ? AND is_primary = 1", account.Id)
	err := row.Scan(&paymentMethodId)
	if err != nil {
		return err
	}

	domain := os.Getenv("DEPLOYMENT_DOMAIN")
	redirectUrl := fmt.Sprintf("https://app.%s/confirm-payment-intent", domain)
	params := &stripe.PaymentIntentParams{
		Amount:              stripe.Int64(int64(charge.Cents)),
		Currency:            stripe.String(string(stripe.CurrencyUSD)),
		Customer:            stripe.String(account.StripeId),
		PaymentMethod:       stripe.String(paymentMethodId),
		ReturnURL:           stripe.String(redirectUrl),
		OffSession:          stripe.Bool(true),
		Confirm:             stripe.Bool(true),
		Description:         stripe.String(charge.Description),
		StatementDescriptor: stripe.String("STUDYIO UPGRADE"),
	}
	params.AddMetadata("upgrade_charge_id", charge.Id)

	var lastErr error
	for attempt := 0; attempt <= hndl.RetryAttempts; attempt++ {
		_, lastErr = paymentintent.New(params)
		if lastErr == nil {
			return nil
		}
	}
	return lastErr
}
