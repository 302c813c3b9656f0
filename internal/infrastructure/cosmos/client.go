package cosmos

import (
	"context"
	"errors"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"
	"go.uber.org/zap"

	"github.com/todokit/backend/internal/config"
)

// NewClient builds a Cosmos client from configuration. The client is shared
// by all requests and passed down explicitly; nothing reads it from package
// state.
func NewClient(cfg config.CosmosConfig) (*azcosmos.Client, error) {
	cred, err := azcosmos.NewKeyCredential(cfg.Key)
	if err != nil {
		return nil, err
	}
	return azcosmos.NewClientWithKey(cfg.Endpoint, cred, nil)
}

// Provision creates the database and container if they do not exist and
// returns the container client. It runs once before the server accepts
// traffic; a 409 from either create means the resource is already there.
func Provision(ctx context.Context, client *azcosmos.Client, cfg config.CosmosConfig, logger *zap.Logger) (*azcosmos.ContainerClient, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if _, err := client.CreateDatabase(ctx, azcosmos.DatabaseProperties{ID: cfg.DatabaseName}, nil); err != nil && !isConflict(err) {
		return nil, err
	}

	database, err := client.NewDatabase(cfg.DatabaseName)
	if err != nil {
		return nil, err
	}

	properties := azcosmos.ContainerProperties{
		ID: cfg.ContainerName,
		PartitionKeyDefinition: azcosmos.PartitionKeyDefinition{
			Paths: []string{"/id"},
		},
	}
	if _, err := database.CreateContainer(ctx, properties, nil); err != nil && !isConflict(err) {
		return nil, err
	}

	logger.Info("cosmos container ready",
		zap.String("database", cfg.DatabaseName),
		zap.String("container", cfg.ContainerName),
	)
	return database.NewContainer(cfg.ContainerName)
}

func isConflict(err error) bool {
	var respErr *azcore.ResponseError
	return errors.As(err, &respErr) && respErr.StatusCode == http.StatusConflict
}
