package transport

// Message is the body of every informational and error response. The web
// client surfaces the string verbatim in its banner.
type Message struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
