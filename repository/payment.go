package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	helpers "github.com/Lineblocs/go-helpers"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"studyio.com/narrator/handlers/billing"
	"studyio.com/narrator/models"
	"studyio.com/narrator/utils"
)

type PaymentService struct {
	db *sql.DB
}

type PaymentRepository interface {
	ChargeCustomer(billingParams *utils.BillingParams, account *models.Account, charge *models.UpgradeCharge) error
	CreateCharge(ctx context.Context, charge *models.UpgradeCharge) error
	CompleteCharge(ctx context.Context, charge *models.UpgradeCharge) error
	FailCharge(ctx context.Context, chargeId string) error
	IncompleteCharges(ctx context.Context) ([]models.UpgradeCharge, error)
}

func NewPaymentRepository(db *sql.DB) PaymentRepository {
	return NewPaymentService(db)
}

func NewPaymentService(db *sql.DB) *PaymentService {
	return &PaymentService{
		db: db,
	}
}

func (ps *PaymentService) ChargeCustomer(billingParams *utils.BillingParams, account *models.Account, charge *models.UpgradeCharge) error {
	var err error
	var hndl billing.BillingHandler
	retryAttempts := getRetryAttempts(billingParams.Data["retry_attempts"])

	switch billingParams.Provider {
	case "stripe":
		key := billingParams.Data["stripe_key"]
		hndl = billing.NewStripeBillingHandler(ps.db, key, retryAttempts)
		err = hndl.ChargeCustomer(account, charge)
		if err != nil {
			helpers.Log(logrus.ErrorLevel, "error charging account..\r\n")
			helpers.Log(logrus.ErrorLevel, err.Error())
		}
	default:
		err = fmt.Errorf("unsupported payment provider %q", billingParams.Provider)
	}

	return err
}

func (ps *PaymentService) CreateCharge(ctx context.Context, charge *models.UpgradeCharge) error {
	now := time.Now().UTC()
	_, err := ps.db.ExecContext(ctx, "INSERT INTO upgrade_charges (`id`, `account_id`, `cents`, `description`, `status`, `num_attempts`, `created_at`, `updated_at`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		charge.Id, charge.AccountId, charge.Cents, charge.Description, models.ChargeIncomplete, 0, now, now)
	if err != nil {
		return errors.Wrap(err, "error creating upgrade charge")
	}
	return nil
}

func (ps *PaymentService) CompleteCharge(ctx context.Context, charge *models.UpgradeCharge) error {
	_, err := ps.db.ExecContext(ctx, "UPDATE upgrade_charges SET status = 'COMPLETE', confirmation_number = ?, num_attempts = num_attempts + 1, last_attempted = ?, updated_at = ? WHERE id = ?",
		charge.ConfirmationNumber, time.Now().UTC(), time.Now().UTC(), charge.Id)
	if err != nil {
		return errors.Wrapf(err, "error completing upgrade charge %s", charge.Id)
	}
	return nil
}

func (ps *PaymentService) FailCharge(ctx context.Context, chargeId string) error {
	_, err := ps.db.ExecContext(ctx, "UPDATE upgrade_charges SET status = 'INCOMPLETE', num_attempts = num_attempts + 1, last_attempted = ?, updated_at = ? WHERE id = ?",
		time.Now().UTC(), time.Now().UTC(), chargeId)
	if err != nil {
		return errors.Wrapf(err, "error marking upgrade charge %s failed", chargeId)
	}
	return nil
}

func (ps *PaymentService) IncompleteCharges(ctx context.Context) ([]models.UpgradeCharge, error) {
	rows, err := ps.db.QueryContext(ctx, "SELECT id, account_id, cents, description FROM upgrade_charges WHERE status = 'INCOMPLETE'")
	if err != nil {
		return nil, errors.Wrap(err, "error listing incomplete charges")
	}
	defer rows.Close()

	var charges []models.UpgradeCharge
	for rows.Next() {
		var charge models.UpgradeCharge
		if err := rows.Scan(&charge.Id, &charge.AccountId, &charge.Cents, &charge.Description); err != nil {
			helpers.Log(logrus.ErrorLevel, "error scanning for db result "+err.Error())
			continue
		}
		charges = append(charges, charge)
	}
	return charges, rows.Err()
}

func getRetryAttempts(s string) int {
	retryAttempts, err := strconv.Atoi(s)
	if err != nil {
		helpers.Log(logrus.InfoLevel, fmt.Sprintf("variable retryAttempts is setup incorrectly. Please ensure that it is set to an integer. retryAttempts=%s setting value to 0", s))
		retryAttempts = 0
	}

	return retryAttempts
}
