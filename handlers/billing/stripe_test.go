package billing

import (
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	models "studyio.com/narrator/models"
)

func TestStripeChargeCustomer(t *testing.T) {
	t.Parallel()

	charge := &models.UpgradeCharge{Id: "chg-1", AccountId: "acct-1", Cents: 999, Description: "Upgrade to paid plan"}

	t.Run("Should refuse accounts without a stripe customer", func(t *testing.T) {
		t.Parallel()

		hndl := NewStripeBillingHandler(nil, "sk_test", 2)
		err := hndl.ChargeCustomer(&models.Account{Id: "acct-1"}, charge)
		assert.ErrorContains(t, err, "no stripe customer")
	})

	t.Run("Should fail when the account has no primary card", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mockSql.ExpectQuery(regexp.QuoteMeta("SELECT stripe_payment_method_id FROM account_cards WHERE account_id = ? AND is_primary = 1")).
			WithArgs("acct-1").
			WillReturnRows(sqlmock.NewRows([]string{"stripe_payment_method_id"}))

		hndl := NewStripeBillingHandler(db, "sk_test", 2)
		assert.Equal(t, 2, hndl.RetryAttempts)

		err = hndl.ChargeCustomer(&models.Account{Id: "acct-1", StripeId: "cus_123"}, charge)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.NoError(t, mockSql.ExpectationsWereMet())
	})
}
