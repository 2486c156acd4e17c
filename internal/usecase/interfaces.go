package usecase

import (
	"context"
	"encoding/json"

	"github.com/xavierca1/greenapi-console/internal/entity"
	"github.com/xavierca1/greenapi-console/internal/infra/integration/greenapi"
)

// GreenAPIClient is satisfied by *greenapi.Client.
type GreenAPIClient interface {
	GetSettings(ctx context.Context, creds entity.Credentials) (json.RawMessage, error)
	GetStateInstance(ctx context.Context, creds entity.Credentials) (*greenapi.StateInstanceResponse, error)
	SendMessage(ctx context.Context, creds entity.Credentials, input greenapi.SendMessageRequest) (*greenapi.SendMessageResponse, error)
	SendFileByURL(ctx context.Context, creds entity.Credentials, input greenapi.SendFileByURLRequest) (*greenapi.SendFileByURLResponse, error)
}
