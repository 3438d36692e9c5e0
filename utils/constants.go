package utils

// Structures

type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

type Message struct {
	Message    string `json:"message"`
	Visibility string `json:"visibility"`
}

var Constants = map[string]string{
	"CONTENT_TYPE_HEADER": "Content-Type",
	"CONTENT_TYPE_JSON":   "application/json",
	"PUBLIC_GREETING":     "Hello from Public Lambda! 🌍",
	"VISIBILITY_PUBLIC":   "public",
}
