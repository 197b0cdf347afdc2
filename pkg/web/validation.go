package web

import (
	"encoding/json"
	"errors"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is one entry in the details list of a validation failure.
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ValidationResponse is the 400 body listing every offending field.
type ValidationResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details"`
}

// ValidationFailed converts a binding error into the per-field detail
// response. Type mismatches in json bodies report the offending field;
// malformed bodies produce a single generic detail entry.
func ValidationFailed(err error) ValidationResponse {
	res := ValidationResponse{Error: "Validation failed"}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		res.Details = make([]FieldError, 0, len(ve))
		for _, fe := range ve {
			res.Details = append(res.Details, FieldError{Field: fe.Field(), Message: Message(fe)})
		}

		return res
	}

	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) {
		res.Details = []FieldError{{Field: ute.Field, Message: typeMessage(ute.Type.Kind())}}
		return res
	}

	var se *json.SyntaxError
	if errors.As(err, &se) {
		res.Details = []FieldError{{Message: "request body is not valid json"}}
		return res
	}

	res.Details = []FieldError{{Message: err.Error()}}

	return res
}

// QueryBindingFailed converts a query binding error into the per-field detail
// response. Non-numeric query values surface as bare strconv errors with no
// field information, so the offending parameter is recovered by matching the
// rejected value against the raw query.
func QueryBindingFailed(err error, query url.Values) ValidationResponse {
	var ne *strconv.NumError
	if !errors.As(err, &ne) {
		return ValidationFailed(err)
	}

	detail := FieldError{Message: "must be an integer"}

	for name, values := range query {
		for _, v := range values {
			if v == ne.Num {
				detail.Field = name
			}
		}
	}

	return ValidationResponse{Error: "Validation failed", Details: []FieldError{detail}}
}

func typeMessage(kind reflect.Kind) string {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "must be a number"
	case reflect.Bool:
		return "must be a boolean"
	case reflect.String:
		return "must be a string"
	case reflect.Slice, reflect.Array:
		return "must be an array"
	}

	return "is invalid"
}

// Message renders a human readable reason for a failed validation tag.
func Message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of [" + fe.Param() + "]"
	case "bankingaccountid":
		return "must be 10-20 uppercase alphanumeric characters"
	case "brokerageaccountid":
		return "must start with BRK followed by 8-12 uppercase alphanumeric characters"
	case "userid":
		return "must be 8-16 uppercase alphanumeric characters"
	}

	return "is invalid"
}

// TagName resolves the wire name of a struct field so validation details
// report json/form/uri names instead of Go identifiers.
func TagName(fld reflect.StructField) string {
	for _, key := range []string{"json", "form", "uri"} {
		name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}

	return fld.Name
}
