package postgres

import (
	"context"

	"localdrop/internal/errors"
	"localdrop/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Models lists every table owned by the relational backend.
func Models() []any {
	return []any{
		&model.BusinessModel{},
		&model.UserModel{},
		&model.PartnershipRequestModel{},
		&model.AccountDeviceModel{},
	}
}

// Migrate creates or extends the schema for Models.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "failed to migrate PostgreSQL schema")
	}

	return nil
}
