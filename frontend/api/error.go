package api

// Error carries everything the backend told us about a failed request:
// the HTTP status, the message to show the user and the raw decoded payload
// for callers that need structured detail.
type Error struct {
	Status  int
	Message string
	Data    map[string]interface{}
}

func (e *Error) Error() string {
	return e.Message
}

// IsUnauthorized reports whether err is an API error with status 401.
// Callers decide what a 401 means; the client itself never touches the session.
func IsUnauthorized(err error) bool {
	apiErr, ok := err.(*Error)
	return ok && apiErr.Status == 401
}
