package usecase

import (
	"strings"

	"github.com/xavierca1/greenapi-console/internal/entity"
	"github.com/xavierca1/greenapi-console/internal/infra/integration/greenapi"
)

// Action names double as the method names shown in results.
const (
	ActionConnect          = "connection"
	ActionDisconnect       = "disconnect"
	ActionGetSettings      = greenapi.MethodGetSettings
	ActionGetStateInstance = greenapi.MethodGetStateInstance
	ActionSendMessage      = greenapi.MethodSendMessage
	ActionSendFileByURL    = greenapi.MethodSendFileByURL
)

type ConnectInput struct {
	IDInstance       string `json:"idInstance"`
	APITokenInstance string `json:"apiTokenInstance"`
}

type SendMessageInput struct {
	ChatID          string                  `json:"chatId"`
	Message         string                  `json:"message"`
	QuotedMessageID string                  `json:"quotedMessageId,omitempty"`
	LinkPreview     *bool                   `json:"linkPreview,omitempty"`
	TypePreview     string                  `json:"typePreview,omitempty"`
	CustomPreview   *greenapi.CustomPreview `json:"customPreview,omitempty"`
	TypingTime      *int                    `json:"typingTime,omitempty"`
}

// Request trims the user-typed fields. Pass-through fields are sent as given.
func (in SendMessageInput) Request() greenapi.SendMessageRequest {
	return greenapi.SendMessageRequest{
		ChatID:          strings.TrimSpace(in.ChatID),
		Message:         strings.TrimSpace(in.Message),
		QuotedMessageID: strings.TrimSpace(in.QuotedMessageID),
		LinkPreview:     in.LinkPreview,
		TypePreview:     in.TypePreview,
		CustomPreview:   in.CustomPreview,
		TypingTime:      in.TypingTime,
	}
}

type SendFileInput struct {
	ChatID          string `json:"chatId"`
	URLFile         string `json:"urlFile"`
	FileName        string `json:"fileName"`
	Caption         string `json:"caption,omitempty"`
	QuotedMessageID string `json:"quotedMessageId,omitempty"`
	TypingTime      *int   `json:"typingTime,omitempty"`
	TypingType      string `json:"typingType,omitempty"`
}

// Request trims the fields; an empty caption is dropped from the body.
func (in SendFileInput) Request() greenapi.SendFileByURLRequest {
	return greenapi.SendFileByURLRequest{
		ChatID:          strings.TrimSpace(in.ChatID),
		URLFile:         strings.TrimSpace(in.URLFile),
		FileName:        strings.TrimSpace(in.FileName),
		Caption:         strings.TrimSpace(in.Caption),
		QuotedMessageID: strings.TrimSpace(in.QuotedMessageID),
		TypingTime:      in.TypingTime,
		TypingType:      in.TypingType,
	}
}

type Alert struct {
	Kind string `json:"kind"` // success | error | info
	Text string `json:"text"`
}

// Outcome is everything a surface needs after an action: the result to
// render, the connection status and which inputs to reset.
type Outcome struct {
	Result      entity.MethodResult `json:"result"`
	Connected   bool                `json:"connected"`
	Alert       Alert               `json:"alert"`
	ClearFields []string            `json:"clearFields,omitempty"`
}

// ConnectionStatus is served as JSON without the token; only the page
// template, rendered for the same origin, prefills it.
type ConnectionStatus struct {
	Connected        bool   `json:"connected"`
	Label            string `json:"label"`
	APIURL           string `json:"apiUrl,omitempty"`
	IDInstance       string `json:"idInstance,omitempty"`
	APITokenInstance string `json:"-"`
}
