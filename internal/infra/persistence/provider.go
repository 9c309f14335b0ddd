// Package persistence selects the storage backend that serves the domain repositories.
package persistence

import (
	"context"
	"log/slog"

	"localdrop/config"
	"localdrop/internal/domain/constants"
	"localdrop/internal/domain/repository"
	"localdrop/internal/errors"
	"localdrop/internal/infra/persistence/firestore"
	"localdrop/internal/infra/persistence/memory"
	"localdrop/internal/infra/persistence/postgres"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

// Params defines the dependencies shared by every backend
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	App    *firebase.App `optional:"true"`
}

// Repositories is the set of repositories one backend provides
type Repositories struct {
	fx.Out

	TxManager    repository.TransactionManager
	Businesses   repository.BusinessRepository
	Users        repository.UserRepository
	Partnerships repository.PartnershipRequestRepository
	Devices      repository.DeviceRepository
}

// New builds the repositories of the backend named in storage.driver.
func New(params Params) (Repositories, error) {
	driver := constants.StorageDriverPostgres
	if params.Config.Storage != nil && params.Config.Storage.Driver != "" {
		driver = params.Config.Storage.Driver
	}
	params.Logger.Info("Storage backend selected", slog.String("driver", driver))

	switch driver {
	case constants.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			TxManager:    postgres.NewTransactionManager(db),
			Businesses:   postgres.NewBusinessRepository(db),
			Users:        postgres.NewUserRepository(db),
			Partnerships: postgres.NewPartnershipRequestRepository(db),
			Devices:      postgres.NewDeviceRepository(db),
		}, nil

	case constants.StorageDriverFirestore:
		client, err := firestore.NewClient(firestore.Params{
			Lifecycle: params.Lifecycle,
			Ctx:       params.Ctx,
			Config:    params.Config,
			Logger:    params.Logger,
			App:       params.App,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			TxManager:    firestore.NewTransactionManager(client),
			Businesses:   firestore.NewBusinessRepository(client),
			Users:        firestore.NewUserRepository(client),
			Partnerships: firestore.NewPartnershipRequestRepository(client),
			Devices:      firestore.NewDeviceRepository(client),
		}, nil

	case constants.StorageDriverMemory:
		params.Logger.Warn("In-memory storage selected, data is lost on restart")
		store := memory.NewStore()

		return Repositories{
			TxManager:    memory.NewTransactionManager(store),
			Businesses:   memory.NewBusinessRepository(store),
			Users:        memory.NewUserRepository(store),
			Partnerships: memory.NewPartnershipRequestRepository(store),
			Devices:      memory.NewDeviceRepository(store),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown storage driver %q", driver)
	}
}
