package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/greenapi-console/internal/locale"
)

func TestValidateSendMessageInput(t *testing.T) {
	cat := locale.English()
	tests := []struct {
		name  string
		input SendMessageInput
		want  string
	}{
		{"valid personal", SendMessageInput{ChatID: "79001234567@c.us", Message: "hi"}, ""},
		{"valid group", SendMessageInput{ChatID: "120363043968066561@g.us", Message: "hi"}, ""},
		{"chatId padded", SendMessageInput{ChatID: "  79001234567@c.us  ", Message: "hi"}, ""},
		{"empty chatId", SendMessageInput{ChatID: "   ", Message: "hi"}, cat.ChatIDRequired},
		{"bare number", SendMessageInput{ChatID: "79001234567", Message: "hi"}, cat.ChatIDSuffix},
		{"wrong suffix", SendMessageInput{ChatID: "79001234567@s.whatsapp.net", Message: "hi"}, cat.ChatIDSuffix},
		{"suffix not at end", SendMessageInput{ChatID: "7900@c.us.x", Message: "hi"}, cat.ChatIDSuffix},
		{"empty message", SendMessageInput{ChatID: "79001234567@c.us", Message: " \n\t"}, cat.MessageRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSendMessageInput(tt.input, cat)
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestValidateSendFileInput(t *testing.T) {
	cat := locale.English()
	valid := SendFileInput{ChatID: "1@c.us", URLFile: "https://example.com/a.png", FileName: "a.png"}

	tests := []struct {
		name   string
		mutate func(in *SendFileInput)
		field  string
		want   string
	}{
		{"valid", func(in *SendFileInput) {}, "", ""},
		{"http scheme", func(in *SendFileInput) { in.URLFile = "http://example.com/a.png" }, "", ""},
		{"upper-case scheme", func(in *SendFileInput) { in.URLFile = "HtTpS://example.com/a.png" }, "", ""},
		{"empty chatId", func(in *SendFileInput) { in.ChatID = "" }, "chatId", cat.ChatIDRequired},
		{"bad chatId suffix", func(in *SendFileInput) { in.ChatID = "1@x.us" }, "chatId", cat.ChatIDSuffix},
		{"empty urlFile", func(in *SendFileInput) { in.URLFile = "  " }, "urlFile", cat.URLFileRequired},
		{"ftp urlFile", func(in *SendFileInput) { in.URLFile = "ftp://example.com/a.png" }, "urlFile", cat.URLFileScheme},
		{"schemeless urlFile", func(in *SendFileInput) { in.URLFile = "example.com/a.png" }, "urlFile", cat.URLFileScheme},
		{"empty fileName", func(in *SendFileInput) { in.FileName = "" }, "fileName", cat.FileNameInvalid},
		{"fileName without dot", func(in *SendFileInput) { in.FileName = "report" }, "fileName", cat.FileNameInvalid},
		{"empty caption is fine", func(in *SendFileInput) { in.Caption = "" }, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			err := ValidateSendFileInput(in, cat)
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			var ve ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
			assert.Equal(t, tt.want, ve.Message)
		})
	}
}

func TestValidateConnectInput(t *testing.T) {
	cat := locale.Russian()

	assert.NoError(t, ValidateConnectInput(ConnectInput{IDInstance: "1101000001", APITokenInstance: "d75b3a66374942c5b3c019c698abc2067e151558acbd412345"}, cat))
	assert.EqualError(t, ValidateConnectInput(ConnectInput{IDInstance: "", APITokenInstance: "t"}, cat), cat.IDInstanceRequired)
	assert.EqualError(t, ValidateConnectInput(ConnectInput{IDInstance: "1", APITokenInstance: "\t"}, cat), cat.TokenRequired)
}

func TestRequestTrimsFields(t *testing.T) {
	msg := SendMessageInput{ChatID: " 1@c.us ", Message: "  hi  ", QuotedMessageID: " q "}.Request()
	assert.Equal(t, "1@c.us", msg.ChatID)
	assert.Equal(t, "hi", msg.Message)
	assert.Equal(t, "q", msg.QuotedMessageID)

	file := SendFileInput{ChatID: "1@c.us", URLFile: " https://x/a.png ", FileName: " a.png ", Caption: " "}.Request()
	assert.Equal(t, "https://x/a.png", file.URLFile)
	assert.Equal(t, "a.png", file.FileName)
	assert.Empty(t, file.Caption)
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, CodeBusy, ErrorCode(&DomainError{Code: CodeBusy, Message: "busy"}))
	assert.Equal(t, CodeInvalidInput, ErrorCode(ValidationError{Field: "chatId", Message: "bad"}))
	assert.Equal(t, CodeStorage, ErrorCode(fmt.Errorf("connect: %w", &DomainError{Code: CodeStorage})))
	assert.Empty(t, ErrorCode(errors.New("dial tcp: timeout")))
}
