package database

import (
	"github.com/shipflow/ordergateway/internal/config"
	"github.com/shipflow/ordergateway/internal/model"
	"github.com/shipflow/ordergateway/pkg/mysql"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewConnection(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := mysql.NewConnection(cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.Order{}, &model.Label{}); err != nil {
		logger.Error("Failed to migrate schema", zap.Error(err))
		return nil, err
	}

	return db, nil
}
