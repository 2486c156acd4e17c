// Package locale holds every user-facing string of the console, so the
// audience language can change without touching the mapping logic.
package locale

import (
	"fmt"
	"strings"
)

type Catalog struct {
	Code string

	ConnectFirst string
	Busy         string
	Unexpected   string
	UnknownError string
	// StatusFailed is the transport-level text of an HTTP failure whose body
	// carries no message and whose code has no dedicated explanation.
	StatusFailed string
	HTTPStatus   map[int]string

	IDInstanceRequired string
	TokenRequired      string
	ChatIDRequired     string
	ChatIDSuffix       string
	MessageRequired    string
	URLFileRequired    string
	URLFileScheme      string
	FileNameInvalid    string
	UnknownAction      string
	InvalidInput       string
	StorageFailed      string

	ConnectionSaved string
	Disconnected    string

	StatusConnected    string
	StatusDisconnected string
	MethodSucceeded    string
	MethodFailed       string
	Loading            string
}

// StatusText returns the fixed explanation for a well-known status code.
func (c *Catalog) StatusText(code int) (string, bool) {
	msg, ok := c.HTTPStatus[code]
	return msg, ok
}

func (c *Catalog) RequestFailed(code int) string {
	return fmt.Sprintf(c.StatusFailed, code)
}

func (c *Catalog) Succeeded(method string) string {
	return fmt.Sprintf(c.MethodSucceeded, method)
}

func (c *Catalog) Failed(method, message string) string {
	if message == "" {
		message = c.UnknownError
	}
	return fmt.Sprintf(c.MethodFailed, method, message)
}

// Lookup returns the catalog for code, falling back to Russian.
func Lookup(code string) *Catalog {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "en", "en-us", "english":
		return English()
	default:
		return Russian()
	}
}

func Russian() *Catalog {
	return &Catalog{
		Code:         "ru",
		ConnectFirst: "Сначала сохраните параметры подключения",
		Busy:         "Запрос уже выполняется, дождитесь ответа",
		Unexpected:   "Непредвиденная ошибка при обращении к GREEN-API",
		UnknownError: "Произошла ошибка",
		StatusFailed: "Запрос завершился с кодом %d",
		HTTPStatus: map[int]string{
			400: "Некорректные параметры запроса. Проверьте chatId и остальные поля",
			401: "Не авторизован. Проверьте apiTokenInstance",
			403: "Доступ запрещён. Проверьте idInstance",
			404: "Метод не найден. Проверьте адрес API и имя метода",
			429: "Слишком много запросов. Повторите позже",
			500: "Внутренняя ошибка сервера GREEN-API",
			502: "Ошибка шлюза GREEN-API. Инстанс временно недоступен",
		},
		IDInstanceRequired: "idInstance обязателен",
		TokenRequired:      "ApiTokenInstance обязателен",
		ChatIDRequired:     "chatId обязателен",
		ChatIDSuffix:       "chatId должен заканчиваться на @c.us или @g.us",
		MessageRequired:    "Текст сообщения обязателен",
		URLFileRequired:    "urlFile обязателен",
		URLFileScheme:      "urlFile должен начинаться с http:// или https://",
		FileNameInvalid:    "fileName обязателен и должен содержать расширение",
		UnknownAction:      "Неизвестное действие",
		InvalidInput:       "Некорректные входные данные",
		StorageFailed:      "Не удалось сохранить настройки подключения",
		ConnectionSaved:    "Параметры подключения сохранены",
		Disconnected:       "Параметры подключения удалены",
		StatusConnected:    "Подключено",
		StatusDisconnected: "Не подключено",
		MethodSucceeded:    "Метод %s выполнен успешно",
		MethodFailed:       "%s: %s",
		Loading:            "Загрузка...",
	}
}

func English() *Catalog {
	return &Catalog{
		Code:         "en",
		ConnectFirst: "Save the connection settings first",
		Busy:         "A request is already in progress, wait for it to finish",
		Unexpected:   "Unexpected error while calling GREEN-API",
		UnknownError: "An error occurred",
		StatusFailed: "Request failed with status code %d",
		HTTPStatus: map[int]string{
			400: "Bad request parameters. Check chatId and the other fields",
			401: "Unauthorized. Check apiTokenInstance",
			403: "Forbidden. Check idInstance",
			404: "Method not found. Check the API URL and method name",
			429: "Too many requests. Try again later",
			500: "GREEN-API internal server error",
			502: "GREEN-API gateway error. The instance is temporarily unavailable",
		},
		IDInstanceRequired: "idInstance is required",
		TokenRequired:      "ApiTokenInstance is required",
		ChatIDRequired:     "chatId is required",
		ChatIDSuffix:       "chatId must end with @c.us or @g.us",
		MessageRequired:    "Message text is required",
		URLFileRequired:    "urlFile is required",
		URLFileScheme:      "urlFile must start with http:// or https://",
		FileNameInvalid:    "fileName is required and must have an extension",
		UnknownAction:      "Unknown action",
		InvalidInput:       "Invalid input",
		StorageFailed:      "Could not save the connection settings",
		ConnectionSaved:    "Connection settings saved",
		Disconnected:       "Connection settings removed",
		StatusConnected:    "Connected",
		StatusDisconnected: "Not connected",
		MethodSucceeded:    "Method %s succeeded",
		MethodFailed:       "%s: %s",
		Loading:            "Loading...",
	}
}
