// Package billing upgrades trial accounts to the paid plan.
package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"studyio.com/narrator/models"
	"studyio.com/narrator/repository"
	"studyio.com/narrator/utils"
)

var ErrAlreadyPaid = errors.New("account is already on the paid plan")

type UpgradeService struct {
	accountRepository repository.AccountRepository
	paymentRepository repository.PaymentRepository
	billingParams     *utils.BillingParams
	priceCents        int
	logger            *logrus.Entry
}

func NewUpgradeService(aRepo repository.AccountRepository, pRepo repository.PaymentRepository, billingParams *utils.BillingParams, priceCents int) *UpgradeService {
	return &UpgradeService{
		accountRepository: aRepo,
		paymentRepository: pRepo,
		billingParams:     billingParams,
		priceCents:        priceCents,
		logger:            logrus.WithField("component", "upgrade"),
	}
}

// ProcessTask charges the upgrade price and moves the account to the paid plan. A
// failed charge stays INCOMPLETE for retry_failed_upgrade_charges.
func (s *UpgradeService) ProcessTask(ctx context.Context, task models.UpgradeTask) error {
	log := s.logger.WithFields(logrus.Fields{"account_id": task.AccountId, "run_id": task.RunID})

	account, err := s.accountRepository.GetAccount(ctx, task.AccountId)
	if err != nil {
		return err
	}
	if account.IsPaid() {
		log.Info("account already upgraded")
		return ErrAlreadyPaid
	}

	charge := &models.UpgradeCharge{
		Id:          uuid.NewString(),
		AccountId:   account.Id,
		Cents:       s.priceCents,
		Description: "Upgrade to paid plan",
	}
	if err := s.paymentRepository.CreateCharge(ctx, charge); err != nil {
		return err
	}

	return s.Settle(ctx, account, charge)
}

// Settle attempts an existing charge and upgrades the account when it succeeds.
func (s *UpgradeService) Settle(ctx context.Context, account *models.Account, charge *models.UpgradeCharge) error {
	log := s.logger.WithFields(logrus.Fields{"account_id": account.Id, "charge_id": charge.Id})

	if err := s.paymentRepository.ChargeCustomer(s.billingParams, account, charge); err != nil {
		log.WithError(err).Error("upgrade charge failed")
		if failErr := s.paymentRepository.FailCharge(ctx, charge.Id); failErr != nil {
			log.WithError(failErr).Error("could not record failed charge")
		}
		return fmt.Errorf("charge %s: %w", charge.Id, err)
	}

	confirmation, err := utils.CreateConfirmationNumber()
	if err != nil {
		return err
	}
	charge.ConfirmationNumber = confirmation
	if err := s.paymentRepository.CompleteCharge(ctx, charge); err != nil {
		return err
	}

	if err := s.accountRepository.SetPlan(ctx, account.Id, models.PlanPaid); err != nil {
		return err
	}

	log.WithField("confirmation_number", confirmation).Info("account upgraded")
	return nil
}
