package persistence

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"localdrop/config"
	"localdrop/internal/domain/constants"
	"localdrop/internal/domain/entity"
	"localdrop/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newParams(t *testing.T, driver string) Params {
	t.Helper()

	return Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Ctx:       context.Background(),
		Config:    &config.Config{Storage: &config.StorageConfig{Driver: driver}},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNew_MemoryDriverSharesOneStore(t *testing.T) {
	repos, err := New(newParams(t, constants.StorageDriverMemory))
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, repos.Businesses.CreateBusiness(ctx, &entity.Business{ID: "bakery"}))

	var seen bool
	err = repos.TxManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		_, err := factory.NewBusinessRepository().FindBusinessByID(ctx, "bakery")
		seen = err == nil

		return err
	})
	require.NoError(t, err)
	assert.True(t, seen)
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New(newParams(t, "cassandra"))
	assert.ErrorContains(t, err, `unknown storage driver "cassandra"`)
}

func TestNew_MissingBackendConfig(t *testing.T) {
	tests := []struct {
		name   string
		driver string
	}{
		{name: "postgres without postgres section", driver: constants.StorageDriverPostgres},
		{name: "firestore without firebase project", driver: constants.StorageDriverFirestore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(newParams(t, tt.driver))
			assert.Error(t, err)
		})
	}
}
