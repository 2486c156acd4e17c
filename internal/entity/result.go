package entity

// APIError is the single shape every failure is normalized to before display.
// Code is set for failures decided locally (NOT_CONNECTED, BUSY, ...) and
// empty when the gateway or the network failed.
type APIError struct {
	HTTPCode int         `json:"httpCode,omitempty"`
	Code     string      `json:"code,omitempty"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
}

func (e APIError) Error() string {
	return e.Message
}

// MethodResult is what the results panel shows. Exactly one of Data and
// Error is meaningful, selected by OK.
type MethodResult struct {
	OK     bool        `json:"ok"`
	Method string      `json:"method"`
	Data   interface{} `json:"data,omitempty"`
	Error  *APIError   `json:"error,omitempty"`
}

func Success(method string, data interface{}) MethodResult {
	return MethodResult{OK: true, Method: method, Data: data}
}

func Failure(method string, err APIError) MethodResult {
	return MethodResult{OK: false, Method: method, Error: &err}
}

// Message returns the error text of a failed result, or "" on success.
func (r MethodResult) Message() string {
	if r.OK || r.Error == nil {
		return ""
	}
	return r.Error.Message
}
