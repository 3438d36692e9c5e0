package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// NewPublicResponse builds the greeting returned by the public endpoint.
// The result is the same on every call.
func NewPublicResponse() (Response, error) {
	return buildResponse(Message{
		Message:    Constants["PUBLIC_GREETING"],
		Visibility: Constants["VISIBILITY_PUBLIC"],
	})
}

func buildResponse(msg Message) (Response, error) {
	if err := msg.Validate(); err != nil {
		return Response{}, fmt.Errorf("invalid message: %w", err)
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return Response{}, fmt.Errorf("error marshalling body: %w", err)
	}

	res := Response{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			Constants["CONTENT_TYPE_HEADER"]: Constants["CONTENT_TYPE_JSON"],
		},
		Body: string(body),
	}
	if err := res.Validate(); err != nil {
		return Response{}, fmt.Errorf("invalid response: %w", err)
	}

	return res, nil
}
