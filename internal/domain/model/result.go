package model

import (
	"encoding/json"
	"net/http"
)

// FaultKind classifies why an upstream lookup did not succeed
type FaultKind string

const (
	FaultNone               FaultKind = ""
	FaultNotFound           FaultKind = "NOT_FOUND"
	FaultUnauthorized       FaultKind = "UNAUTHORIZED"
	FaultInvalidQuery       FaultKind = "INVALID_QUERY"
	FaultTimeout            FaultKind = "TIMEOUT"
	FaultNetwork            FaultKind = "NETWORK"
	FaultUpstream           FaultKind = "UPSTREAM"
	FaultUnresolvedLocation FaultKind = "UNRESOLVED_LOCATION"
)

// Result is the normalized envelope returned for every upstream lookup.
// Kind and StatusCode stay server side.
type Result struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data,omitempty"`
	Error      string          `json:"error,omitempty"`
	Kind       FaultKind       `json:"-"`
	StatusCode int             `json:"-"`
}

// Ok wraps an upstream body that is passed through unchanged
func Ok(data json.RawMessage) Result {
	return Result{Success: true, Data: data, StatusCode: http.StatusOK}
}

// Fail builds an unsuccessful result. statusCode is the upstream HTTP status, 0 when none was received.
func Fail(kind FaultKind, statusCode int, message string) Result {
	return Result{Success: false, Error: message, Kind: kind, StatusCode: statusCode}
}

// Decode unmarshals the passed-through body into dest
func (r Result) Decode(dest any) error {
	return json.Unmarshal(r.Data, dest)
}
