package usecase

import (
	"regexp"
	"strings"

	"github.com/xavierca1/greenapi-console/internal/locale"
)

const (
	ChatSuffixPersonal = "@c.us"
	ChatSuffixGroup    = "@g.us"
)

var httpScheme = regexp.MustCompile(`(?i)^https?://`)

// Validators return the first violation, in form order, or nil.

func ValidateConnectInput(input ConnectInput, cat *locale.Catalog) error {
	if strings.TrimSpace(input.IDInstance) == "" {
		return ValidationError{"idInstance", cat.IDInstanceRequired}
	}
	if strings.TrimSpace(input.APITokenInstance) == "" {
		return ValidationError{"apiTokenInstance", cat.TokenRequired}
	}
	return nil
}

func ValidateSendMessageInput(input SendMessageInput, cat *locale.Catalog) error {
	if err := validateChatID(input.ChatID, cat); err != nil {
		return err
	}
	if strings.TrimSpace(input.Message) == "" {
		return ValidationError{"message", cat.MessageRequired}
	}
	return nil
}

func ValidateSendFileInput(input SendFileInput, cat *locale.Catalog) error {
	if err := validateChatID(input.ChatID, cat); err != nil {
		return err
	}

	urlFile := strings.TrimSpace(input.URLFile)
	if urlFile == "" {
		return ValidationError{"urlFile", cat.URLFileRequired}
	}
	if !httpScheme.MatchString(urlFile) {
		return ValidationError{"urlFile", cat.URLFileScheme}
	}

	fileName := strings.TrimSpace(input.FileName)
	if fileName == "" || !strings.Contains(fileName, ".") {
		return ValidationError{"fileName", cat.FileNameInvalid}
	}
	return nil
}

func validateChatID(chatID string, cat *locale.Catalog) error {
	chatID = strings.TrimSpace(chatID)
	if chatID == "" {
		return ValidationError{"chatId", cat.ChatIDRequired}
	}
	if !IsChatID(chatID) {
		return ValidationError{"chatId", cat.ChatIDSuffix}
	}
	return nil
}

// IsChatID reports whether s addresses a personal chat or a group.
func IsChatID(s string) bool {
	return strings.HasSuffix(s, ChatSuffixPersonal) || strings.HasSuffix(s, ChatSuffixGroup)
}
