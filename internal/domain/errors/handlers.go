package errors

// ErrorBody is the wire shape of every error response. The HTTP layer maps
// each error kind to a status code plus this structured body; raw causes and
// stack traces never leave the process.
type ErrorBody struct {
	ErrorMessage string `json:"error_message"` // User-facing message
	ErrorCode    int    `json:"error_code"`    // Machine-readable code, e.g. CodeTokenInvalid
}
