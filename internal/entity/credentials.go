package entity

import (
	"context"
	"strings"
)

// Credentials addresses one GREEN-API instance. The pair idInstance +
// apiTokenInstance is a capability for that account's endpoints.
type Credentials struct {
	APIURL           string `json:"apiUrl"`
	IDInstance       string `json:"idInstance"`
	APITokenInstance string `json:"apiTokenInstance"`
}

func NewCredentials(apiURL, idInstance, apiTokenInstance string) Credentials {
	return Credentials{
		APIURL:           strings.TrimRight(strings.TrimSpace(apiURL), "/"),
		IDInstance:       strings.TrimSpace(idInstance),
		APITokenInstance: strings.TrimSpace(apiTokenInstance),
	}
}

// Complete reports whether every field is set. No API call is made with
// incomplete credentials.
func (c Credentials) Complete() bool {
	return c.APIURL != "" && c.IDInstance != "" && c.APITokenInstance != ""
}

type CredentialsRepositoryInterface interface {
	// Load never fails: a missing or malformed record is reported as ok=false.
	Load(ctx context.Context) (*Credentials, bool)
	Save(ctx context.Context, c Credentials) error
	Clear(ctx context.Context) error
}
