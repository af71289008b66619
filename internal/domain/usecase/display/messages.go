package display

import "net/http"

const (
	timeoutMessage    = "Timeout Error:\nThe request timed out"
	connectionMessage = "Connection Error:\nCheck your internet connection"
	genericPrefix     = "HTTP error occurred:\n"
)

var statusMessages = map[int]string{
	http.StatusBadRequest:          "Bad request:\nPlease check your input",
	http.StatusUnauthorized:        "Unauthorized:\nInvalid API key",
	http.StatusForbidden:           "Forbidden:\nAccess is denied",
	http.StatusNotFound:            "Not found:\nCity not found",
	http.StatusInternalServerError: "Internal Server Error:\nPlease try again later",
	http.StatusBadGateway:          "Bad Gateway:\nInvalid response from the server",
	http.StatusServiceUnavailable:  "Service Unavailable:\nServer is down",
	http.StatusGatewayTimeout:      "Gateway Timeout:\nNo response from the server",
}

// StatusMessage returns the canned message for an HTTP status, falling back to detail
func StatusMessage(status int, detail string) string {
	if message, ok := statusMessages[status]; ok {
		return message
	}
	return genericPrefix + detail
}
