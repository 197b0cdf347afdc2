// Package web defines common response components for the mock APIs.
package web

// ErrorResponse is the json body returned for not-found and internal
// failures. The optional fields echo back the identifier or path that
// triggered the error.
type ErrorResponse struct {
	Error     string `json:"error"`
	AccountID string `json:"accountId,omitempty"`
	UserID    string `json:"userId,omitempty"`
	Path      string `json:"path,omitempty"`
	Stack     string `json:"stack,omitempty"`
}

// Error wraps a given err into a json friendly struct.
func Error(err error) ErrorResponse {
	return ErrorResponse{Error: err.Error()}
}

// AccountNotFound builds the 404 body for a missing account.
func AccountNotFound(msg, accountID string) ErrorResponse {
	return ErrorResponse{Error: msg, AccountID: accountID}
}

// RouteNotFound builds the 404 body for an unmatched route.
func RouteNotFound(path string) ErrorResponse {
	return ErrorResponse{Error: "Resource not found", Path: path}
}
