package main

var TestPayloads = []struct {
	Name        string
	Payload     []byte
	Description string
}{
	{
		Name:        "EmptyObject",
		Payload:     []byte(`{}`),
		Description: "Empty JSON object",
	},
	{
		Name:        "Null",
		Payload:     []byte(`null`),
		Description: "JSON null payload",
	},
	{
		Name:        "NoPayload",
		Payload:     nil,
		Description: "Invocation without a payload",
	},
	{
		Name:        "APIGatewayRequest",
		Payload:     []byte(`{"httpMethod":"GET","path":"/public","queryStringParameters":{"limit":"10"}}`),
		Description: "API Gateway proxy request",
	},
	{
		Name:        "ArrayPayload",
		Payload:     []byte(`[1,2,3]`),
		Description: "Payload of an unexpected shape",
	},
	{
		Name:        "MalformedJSON",
		Payload:     []byte(`{"message":`),
		Description: "Truncated JSON",
	},
	{
		Name:        "PlainText",
		Payload:     []byte(`hello`),
		Description: "Payload that is not JSON at all",
	},
}

const ExpectedBody = `{"message":"Hello from Public Lambda! 🌍","visibility":"public"}`
