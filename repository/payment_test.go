package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	helpers "github.com/Lineblocs/go-helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"studyio.com/narrator/models"
	"studyio.com/narrator/utils"
)

func TestPaymentRepository(t *testing.T) {
	t.Parallel()
	helpers.InitLogrus("file")

	t.Run("Should create an incomplete charge", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		charge := &models.UpgradeCharge{Id: "chg-1", AccountId: "acct-1", Cents: 999, Description: "Upgrade to paid plan"}
		mockSql.ExpectExec(regexp.QuoteMeta("INSERT INTO upgrade_charges")).
			WithArgs("chg-1", "acct-1", 999, "Upgrade to paid plan", models.ChargeIncomplete, 0, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		assert.NoError(t, NewPaymentService(db).CreateCharge(context.Background(), charge))
		assert.NoError(t, mockSql.ExpectationsWereMet())
	})

	t.Run("Should skip rows that cannot be scanned", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mockSql.ExpectQuery(regexp.QuoteMeta("SELECT id, account_id, cents, description FROM upgrade_charges WHERE status = 'INCOMPLETE'")).
			WillReturnRows(sqlmock.NewRows([]string{"id", "account_id", "cents", "description"}).
				AddRow("chg-1", "acct-1", 999, "Upgrade").
				AddRow("chg-2", "acct-2", "not-a-number", "Upgrade"))

		charges, err := NewPaymentService(db).IncompleteCharges(context.Background())
		require.NoError(t, err)
		require.Len(t, charges, 1)
		assert.Equal(t, "chg-1", charges[0].Id)
		assert.NoError(t, mockSql.ExpectationsWereMet())
	})

	t.Run("Should refuse an unknown payment provider", func(t *testing.T) {
		t.Parallel()

		params := &utils.BillingParams{Provider: "paypal", Data: map[string]string{"retry_attempts": "2"}}
		err := NewPaymentService(nil).ChargeCustomer(params, &models.Account{Id: "acct-1"}, &models.UpgradeCharge{Id: "chg-1"})
		assert.ErrorContains(t, err, "unsupported payment provider")
	})

	t.Run("Should treat a malformed retry setting as zero", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 0, getRetryAttempts("lots"))
		assert.Equal(t, 3, getRetryAttempts("3"))
	})
}
