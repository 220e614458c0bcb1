package cmd

import (
	"context"
	"fmt"

	helpers "github.com/Lineblocs/go-helpers"
	"github.com/sirupsen/logrus"
	models "studyio.com/narrator/models"
	"studyio.com/narrator/repository"
)

type ChargeSettler interface {
	Settle(ctx context.Context, account *models.Account, charge *models.UpgradeCharge) error
}

type RetryFailedUpgradeChargesJob struct {
	accountRepository repository.AccountRepository
	paymentRepository repository.PaymentRepository
	settler           ChargeSettler
}

func NewRetryFailedUpgradeChargesJob(aRepo repository.AccountRepository, pRepo repository.PaymentRepository, settler ChargeSettler) *RetryFailedUpgradeChargesJob {
	return &RetryFailedUpgradeChargesJob{
		accountRepository: aRepo,
		paymentRepository: pRepo,
		settler:           settler,
	}
}

// cron tab to retry upgrade charges that were declined
func (job *RetryFailedUpgradeChargesJob) RetryFailedUpgradeCharges() error {
	ctx := context.Background()

	charges, err := job.paymentRepository.IncompleteCharges(ctx)
	if err != nil {
		return err
	}

	for i := range charges {
		charge := &charges[i]
		account, err := job.accountRepository.GetAccount(ctx, charge.AccountId)
		if err != nil {
			helpers.Log(logrus.ErrorLevel, "error getting account ID: "+charge.AccountId+"\r\n")
			continue
		}
		if account.IsPaid() {
			helpers.Log(logrus.InfoLevel, fmt.Sprintf("account %s already upgraded, skipping charge %s\r\n", account.Id, charge.Id))
			continue
		}

		// try to charge the account again.
		if err := job.settler.Settle(ctx, account, charge); err != nil {
			helpers.Log(logrus.ErrorLevel, "error retrying charge "+charge.Id+": "+err.Error())
			continue
		}
	}
	return nil
}
