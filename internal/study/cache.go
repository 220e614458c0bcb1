package study

import (
	"context"

	"studyio.com/narrator/models"
	"studyio.com/narrator/repository"
)

// SessionCache finds a stored session for an identical request. Hits are free: they
// never touch the quota counter or the usage table.
type SessionCache struct {
	accounts repository.AccountRepository
}

func NewSessionCache(accounts repository.AccountRepository) *SessionCache {
	return &SessionCache{accounts: accounts}
}

// Lookup returns nil without error on a miss.
func (c *SessionCache) Lookup(ctx context.Context, accountId string, req *models.GenerationRequest) (*models.StudySession, error) {
	return c.accounts.FindSession(ctx, accountId, req)
}
