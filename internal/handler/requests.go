package handler

import (
	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance for request payloads.
// validator.Validate is safe for concurrent use and caches struct info.
var validate = validator.New()

// UserIDRequest carries the user identifier path parameter.
type UserIDRequest struct {
	ID int64 `param:"id" validate:"required,min=1"`
}

func (r *UserIDRequest) Validate() error {
	return validate.Struct(r)
}

// TweetIDRequest carries the tweet identifier path parameter.
type TweetIDRequest struct {
	ID int64 `param:"id" validate:"required,min=1"`
}

func (r *TweetIDRequest) Validate() error {
	return validate.Struct(r)
}

// EmptyRequest is used by endpoints that take no input at all.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error {
	return nil
}
