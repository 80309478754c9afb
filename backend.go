package main

import (
	"context"
	"fmt"

	"intown_server/config"
	"intown_server/models"
	"intown_server/services"

	"go.uber.org/zap"
)

// storage is the contact repository and swipe store selected by configuration
type storage struct {
	Contacts services.ContactRepository
	Swipes   services.SwipeStore
	Close    func() error
}

func openStorage(ctx context.Context, cfg config.Config, logger *zap.Logger) (*storage, error) {
	switch cfg.StorageBackend {
	case models.BackendSQLite:
		db, err := services.NewSQLiteService(cfg.DatabasePath, logger)
		if err != nil {
			return nil, err
		}
		return &storage{Contacts: db, Swipes: db, Close: db.Close}, nil

	case models.BackendDynamo:
		logger.Info("Initializing DynamoDB client...", zap.String("region", cfg.AWSRegion))
		client, err := services.InitializeDynamoDBClient(ctx, cfg.AWSRegion)
		if err != nil {
			return nil, err
		}
		dynamo := &services.DynamoService{Client: client, Logger: logger}
		return &storage{
			Contacts: &services.DynamoContactRepository{Dynamo: dynamo},
			Swipes:   &services.DynamoSwipeStore{Dynamo: dynamo},
			Close:    func() error { return nil },
		}, nil

	case models.BackendMemory:
		logger.Warn("Using in-memory storage; data is lost on exit")
		return &storage{
			Contacts: &services.MemoryContactRepository{},
			Swipes:   services.NewMemorySwipeStore(),
			Close:    func() error { return nil },
		}, nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}

func newContactService(st *storage, notifier services.SwipeNotifier) *services.ContactService {
	return &services.ContactService{
		Repo:     st.Contacts,
		Swipes:   st.Swipes,
		Notifier: notifier,
		Logger:   logger,
	}
}
