// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidID is wrapped by errors for calls rejected before the network.
var ErrInvalidID = errors.New("invalid id")

// FieldError is one per-field validation failure reported by the server.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// errorBody is the server's error envelope.
type errorBody struct {
	Message string       `json:"message"`
	Code    string       `json:"code"`
	Errors  []FieldError `json:"errors"`
}

// Error is returned by every failed client call.
//
// Status is 0 when the call never reached the server.
type Error struct {
	Op      string
	Status  int
	Code    string
	Message string
	Fields  []FieldError
	Err     error
}

func (e *Error) Error() string {
	message := e.Op + ": " + e.Message
	if e.Status != 0 {
		message = fmt.Sprintf("%s (%d)", message, e.Status)
	}
	if e.Err != nil {
		message += ": " + e.Err.Error()
	}
	return message
}

func (e *Error) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsConflict reports whether err is a 409 from the server.
func IsConflict(err error) bool {
	return hasStatus(err, http.StatusConflict)
}

func hasStatus(err error, status int) bool {
	var failure *Error
	return errors.As(err, &failure) && failure.Status == status
}
