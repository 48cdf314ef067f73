package models

// ErrorResponse is the body of every error produced by the gateway.
//
// Fields are declared in alphabetical order so the serialized keys are
// sorted, like the keys of map-based success bodies.
type ErrorResponse struct {
	// Code is the machine-readable error code, e.g. "invalid_token" or
	// "endpoint_not_found".
	Code string `json:"code"`

	// Details carries optional structured context. Serialized as null when
	// empty.
	Details any `json:"details"`
}

// MethodNotAllowedDetails identifies the endpoint that rejected a verb:
// its Go type name and the import path of the package declaring it.
type MethodNotAllowedDetails struct {
	HandlerClassName  string `json:"handler_class_name"`
	HandlerModuleName string `json:"handler_module_name"`
	Method            string `json:"method"`
}

// PingResponse is returned by the ping endpoints.
type PingResponse struct {
	ID    string `json:"_id"`
	Reply string `json:"reply"`
}

// WhoAmIResponse describes the bearer of the token used for the request.
type WhoAmIResponse struct {
	ID        string   `json:"_id"`
	ExpiresAt int64    `json:"expires_at"`
	Scopes    []string `json:"scopes"`
	Subject   string   `json:"subject"`
}

// BuildInfoResponse is returned by the version endpoint.
type BuildInfoResponse struct {
	BuildCommit  string `json:"build_commit"`
	BuildDate    string `json:"build_date"`
	BuildVersion string `json:"build_version"`
}
