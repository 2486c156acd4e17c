package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/xavierca1/greenapi-console/internal/entity"
	"github.com/xavierca1/greenapi-console/internal/infra/http/middleware"
	"github.com/xavierca1/greenapi-console/internal/infra/integration/greenapi"
	"github.com/xavierca1/greenapi-console/internal/locale"
)

type actionHandler func(ctx context.Context, raw json.RawMessage) Outcome

// Console sequences user actions against the config store and the
// GREEN-API client. Every surface (HTTP page, tests) goes through Dispatch.
type Console struct {
	Session       *Session
	Store         entity.CredentialsRepositoryInterface
	Client        GreenAPIClient
	Catalog       *locale.Catalog
	DefaultAPIURL string

	inFlight *InFlight
	handlers map[string]actionHandler
}

func NewConsole(
	store entity.CredentialsRepositoryInterface,
	client GreenAPIClient,
	catalog *locale.Catalog,
	defaultAPIURL string,
) *Console {
	c := &Console{
		Session:       NewSession(),
		Store:         store,
		Client:        client,
		Catalog:       catalog,
		DefaultAPIURL: defaultAPIURL,
		inFlight:      NewInFlight(),
	}

	c.handlers = map[string]actionHandler{
		ActionConnect:          c.handleConnect,
		ActionDisconnect:       c.handleDisconnect,
		ActionGetSettings:      c.handleGetSettings,
		ActionGetStateInstance: c.handleGetStateInstance,
		ActionSendMessage:      c.handleSendMessage,
		ActionSendFileByURL:    c.handleSendFileByURL,
	}
	return c
}

// Actions lists the registered action names.
func (c *Console) Actions() []string {
	return []string{
		ActionConnect, ActionDisconnect,
		ActionGetSettings, ActionGetStateInstance,
		ActionSendMessage, ActionSendFileByURL,
	}
}

// Restore loads previously saved credentials into the session.
func (c *Console) Restore(ctx context.Context) bool {
	creds, ok := c.Store.Load(ctx)
	if !ok {
		c.Session.Clear()
		log.Println("ℹ️ Console: no saved connection")
		return false
	}

	c.Session.Replace(*creds)
	log.Printf("🔌 Console: restored connection for instance %s", creds.IDInstance)
	return true
}

func (c *Console) Status() ConnectionStatus {
	creds, ok := c.Session.Current()
	if !ok {
		return ConnectionStatus{Label: c.Catalog.StatusDisconnected}
	}
	return ConnectionStatus{
		Connected:        true,
		Label:            c.Catalog.StatusConnected,
		APIURL:           creds.APIURL,
		IDInstance:       creds.IDInstance,
		APITokenInstance: creds.APITokenInstance,
	}
}

// Loading reports whether action has a call outstanding.
func (c *Console) Loading(action string) bool {
	return c.inFlight.Active(action)
}

// Pending lists the actions with a call outstanding.
func (c *Console) Pending() []string {
	return c.inFlight.Snapshot()
}

func (c *Console) Dispatch(ctx context.Context, action string, raw json.RawMessage) Outcome {
	handler, ok := c.handlers[action]
	if !ok {
		return c.outcome(c.fail(action, &DomainError{CodeUnknownAction, c.Catalog.UnknownAction}))
	}

	out := handler(ctx, raw)
	middleware.RecordAction(action, resultLabel(out.Result))
	return out
}

func resultLabel(r entity.MethodResult) string {
	switch {
	case r.OK:
		return "ok"
	case r.Error != nil && r.Error.Code != "":
		return r.Error.Code
	default:
		return "gateway_error"
	}
}

func (c *Console) handleConnect(ctx context.Context, raw json.RawMessage) Outcome {
	var input ConnectInput
	if err := decode(raw, &input); err != nil {
		return c.outcome(c.invalidInput(ActionConnect, err))
	}
	return c.Connect(ctx, input)
}

// Connect validates and persists new credentials, replacing the old ones.
func (c *Console) Connect(ctx context.Context, input ConnectInput) Outcome {
	if err := ValidateConnectInput(input, c.Catalog); err != nil {
		c.Session.Clear()
		return c.outcome(c.fail(ActionConnect, err))
	}

	next := entity.NewCredentials(c.DefaultAPIURL, input.IDInstance, input.APITokenInstance)

	if err := c.Store.Save(ctx, next); err != nil {
		log.Printf("❌ Console: failed to save connection: %v", err)
		c.Session.Clear()
		return c.outcome(c.fail(ActionConnect, &DomainError{CodeStorage, c.Catalog.StorageFailed}))
	}

	c.Session.Replace(next)
	log.Printf("🔌 Console: connected to instance %s via %s", next.IDInstance, next.APIURL)

	return c.outcome(entity.Success(ActionConnect, map[string]string{
		"message":    c.Catalog.ConnectionSaved,
		"apiUrl":     next.APIURL,
		"idInstance": next.IDInstance,
	}))
}

func (c *Console) handleDisconnect(ctx context.Context, _ json.RawMessage) Outcome {
	return c.Disconnect(ctx)
}

// Disconnect forgets the session and the saved record.
func (c *Console) Disconnect(ctx context.Context) Outcome {
	c.Session.Clear()
	if err := c.Store.Clear(ctx); err != nil {
		log.Printf("❌ Console: failed to clear saved connection: %v", err)
		return c.outcome(c.fail(ActionDisconnect, &DomainError{CodeStorage, c.Catalog.StorageFailed}))
	}

	log.Println("🔌 Console: disconnected")
	return c.outcome(entity.Success(ActionDisconnect, map[string]string{
		"message": c.Catalog.Disconnected,
	}))
}

func (c *Console) handleGetSettings(ctx context.Context, _ json.RawMessage) Outcome {
	return c.outcome(c.guardedCall(ctx, ActionGetSettings, nil,
		func(ctx context.Context, creds entity.Credentials) (interface{}, error) {
			return c.Client.GetSettings(ctx, creds)
		}))
}

func (c *Console) handleGetStateInstance(ctx context.Context, _ json.RawMessage) Outcome {
	return c.outcome(c.guardedCall(ctx, ActionGetStateInstance, nil,
		func(ctx context.Context, creds entity.Credentials) (interface{}, error) {
			state, err := c.Client.GetStateInstance(ctx, creds)
			if err != nil {
				return nil, err
			}
			if !state.StateInstance.Known() {
				log.Printf("⚠️ Console: instance %s reported unfamiliar state %q", creds.IDInstance, state.StateInstance)
			}
			return state, nil
		}))
}

func (c *Console) handleSendMessage(ctx context.Context, raw json.RawMessage) Outcome {
	var input SendMessageInput
	if err := decode(raw, &input); err != nil {
		return c.outcome(c.invalidInput(ActionSendMessage, err))
	}

	out := c.outcome(c.guardedCall(ctx, ActionSendMessage,
		func() error { return ValidateSendMessageInput(input, c.Catalog) },
		func(ctx context.Context, creds entity.Credentials) (interface{}, error) {
			return c.Client.SendMessage(ctx, creds, input.Request())
		}))

	if out.Result.OK {
		out.ClearFields = []string{"message"}
	}
	return out
}

func (c *Console) handleSendFileByURL(ctx context.Context, raw json.RawMessage) Outcome {
	var input SendFileInput
	if err := decode(raw, &input); err != nil {
		return c.outcome(c.invalidInput(ActionSendFileByURL, err))
	}

	return c.outcome(c.guardedCall(ctx, ActionSendFileByURL,
		func() error { return ValidateSendFileInput(input, c.Catalog) },
		func(ctx context.Context, creds entity.Credentials) (interface{}, error) {
			return c.Client.SendFileByURL(ctx, creds, input.Request())
		}))
}

// guardedCall is the one path to the gateway:
// connected? -> valid? -> acquire loading flag -> call -> wrap result.
// The loading flag is released on every exit, panics included.
func (c *Console) guardedCall(
	ctx context.Context,
	method string,
	validate func() error,
	call func(ctx context.Context, creds entity.Credentials) (interface{}, error),
) (result entity.MethodResult) {
	creds, ok := c.Session.Current()
	if !ok {
		return c.fail(method, &DomainError{CodeNotConnected, c.Catalog.ConnectFirst})
	}

	if validate != nil {
		if err := validate(); err != nil {
			return c.fail(method, err)
		}
	}

	release, acquired := c.inFlight.Acquire(method)
	if !acquired {
		return c.fail(method, &DomainError{CodeBusy, c.Catalog.Busy})
	}
	defer release()

	defer func() {
		if p := recover(); p != nil {
			log.Printf("❌ Console: %s panicked: %v", method, p)
			result = entity.Failure(method, greenapi.MapError(fmt.Errorf("%v", p), c.Catalog))
		}
	}()

	data, err := call(ctx, creds)
	if err != nil {
		return entity.Failure(method, greenapi.MapError(err, c.Catalog))
	}
	return entity.Success(method, data)
}

// fail builds a synthetic failure; it never reaches the network.
func (c *Console) fail(method string, err error) entity.MethodResult {
	code := ErrorCode(err)
	log.Printf("⚠️ Console: %s rejected [%s]: %s", method, code, err.Error())
	return entity.Failure(method, entity.APIError{Code: code, Message: err.Error()})
}

func (c *Console) invalidInput(method string, err error) entity.MethodResult {
	return c.fail(method, &DomainError{CodeInvalidInput, fmt.Sprintf("%s: %v", c.Catalog.InvalidInput, err)})
}

func (c *Console) outcome(result entity.MethodResult) Outcome {
	alert := Alert{Kind: "success", Text: c.Catalog.Succeeded(result.Method)}
	if !result.OK {
		alert = Alert{Kind: "error", Text: c.Catalog.Failed(result.Method, result.Message())}
	}

	return Outcome{
		Result:    result,
		Connected: c.Session.Connected(),
		Alert:     alert,
	}
}

// decode accepts an empty body as an empty form.
func decode(raw json.RawMessage, v interface{}) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	return json.Unmarshal(raw, v)
}
