package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/pkg/errors"
	"studyio.com/narrator/models"
)

const appConfigId = "app_config"

type ConfigRepository interface {
	GetPolicyConfig(ctx context.Context) (*models.PolicyConfig, error)
}

type ConfigService struct {
	db *sql.DB
}

func NewConfigRepository(db *sql.DB) ConfigRepository {
	return &ConfigService{db: db}
}

// GetPolicyConfig reads the admin document, falling back to defaults when it is
// missing or partially filled in.
func (cs *ConfigService) GetPolicyConfig(ctx context.Context) (*models.PolicyConfig, error) {
	var raw []byte
	err := cs.db.QueryRowContext(ctx, "SELECT config FROM app_config WHERE id = ?", appConfigId).Scan(&raw)
	if err == sql.ErrNoRows {
		return models.DefaultPolicyConfig(), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "error loading policy config")
	}

	var cfg models.PolicyConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, errors.Wrap(err, "error decoding policy config")
	}
	cfg.FillDefaults()
	return &cfg, nil
}
