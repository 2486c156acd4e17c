package greenapi

import "github.com/xavierca1/greenapi-console/internal/entity"

const (
	MethodGetSettings      = "getSettings"
	MethodGetStateInstance = "getStateInstance"
	MethodSendMessage      = "sendMessage"
	MethodSendFileByURL    = "sendFileByUrl"
)

type StateInstanceResponse struct {
	StateInstance entity.StateInstance `json:"stateInstance"`
}

// CustomPreview replaces the automatically generated link preview.
type CustomPreview struct {
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Link          string `json:"link,omitempty"`
	URLFile       string `json:"urlFile,omitempty"`
	JpegThumbnail string `json:"jpegThumbnail,omitempty"`
}

type SendMessageRequest struct {
	ChatID          string         `json:"chatId"`
	Message         string         `json:"message"`
	QuotedMessageID string         `json:"quotedMessageId,omitempty"`
	LinkPreview     *bool          `json:"linkPreview,omitempty"`
	TypePreview     string         `json:"typePreview,omitempty"` // large | small
	CustomPreview   *CustomPreview `json:"customPreview,omitempty"`
	TypingTime      *int           `json:"typingTime,omitempty"`
}

type SendMessageResponse struct {
	IDMessage string `json:"idMessage"`
}

type SendFileByURLRequest struct {
	ChatID          string `json:"chatId"`
	URLFile         string `json:"urlFile"`
	FileName        string `json:"fileName"`
	Caption         string `json:"caption,omitempty"`
	QuotedMessageID string `json:"quotedMessageId,omitempty"`
	TypingTime      *int   `json:"typingTime,omitempty"`
	TypingType      string `json:"typingType,omitempty"`
}

type SendFileByURLResponse struct {
	IDMessage string `json:"idMessage"`
}

// errorBody is the subset of a failed response body used for messages.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
