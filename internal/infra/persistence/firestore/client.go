// Package firestore contains the Cloud Firestore implementation of the persistence layer.
package firestore

import (
	"context"
	"log/slog"

	"localdrop/config"
	"localdrop/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	App    *firebase.App `optional:"true"`
}

// NewClient opens the Firestore client. The default database is reached through the shared Firebase
// app; a named database needs its own client.
func NewClient(params Params) (*firestore.Client, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.ProjectID == "" {
		return nil, errors.New("firestore storage selected without a firebase project")
	}

	var (
		client *firestore.Client
		err    error
	)
	if cfg.DatabaseID == "" && params.App != nil {
		client, err = params.App.Firestore(params.Ctx)
	} else {
		var opts []option.ClientOption
		if cfg.CredentialsPath != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
		}

		databaseID := cfg.DatabaseID
		if databaseID == "" {
			databaseID = firestore.DefaultDatabaseID
		}
		client, err = firestore.NewClientWithDatabase(params.Ctx, cfg.ProjectID, databaseID, opts...)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Logger.Info("Firestore client initialized",
		slog.String("project_id", cfg.ProjectID),
		slog.String("database_id", cfg.DatabaseID),
	)

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
