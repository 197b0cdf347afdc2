package web

import (
	"encoding/json"
	"errors"
	"net/url"
	"reflect"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestQueryBindingFailed(t *testing.T) {
	_, numErr := strconv.Atoi("abc")
	require.Error(t, numErr)

	testCases := []struct {
		name  string
		err   error
		query url.Values
		want  ValidationResponse
	}{
		{
			name:  "NonNumericLimit",
			err:   numErr,
			query: url.Values{"limit": {"abc"}, "offset": {"0"}},
			want: ValidationResponse{
				Error:   "Validation failed",
				Details: []FieldError{{Field: "limit", Message: "must be an integer"}},
			},
		},
		{
			name:  "ValueAbsentFromQuery",
			err:   numErr,
			query: url.Values{},
			want: ValidationResponse{
				Error:   "Validation failed",
				Details: []FieldError{{Message: "must be an integer"}},
			},
		},
		{
			name:  "NonStrconvError",
			err:   errors.New("boom"),
			query: url.Values{"limit": {"10"}},
			want: ValidationResponse{
				Error:   "Validation failed",
				Details: []FieldError{{Message: "boom"}},
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			got := QueryBindingFailed(tc.err, tc.query)

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("response mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidationFailedTypeMismatch(t *testing.T) {
	err := &json.UnmarshalTypeError{Field: "initialDeposit", Type: reflect.TypeOf(float64(0))}

	got := ValidationFailed(err)
	require.Equal(t, "Validation failed", got.Error)
	require.Equal(t, []FieldError{{Field: "initialDeposit", Message: "must be a number"}}, got.Details)
}

func TestValidationFailedMalformedJSON(t *testing.T) {
	var target map[string]any
	err := json.Unmarshal([]byte(`{`), &target)
	require.Error(t, err)

	got := ValidationFailed(err)
	require.Equal(t, "Validation failed", got.Error)
	require.Equal(t, []FieldError{{Message: "request body is not valid json"}}, got.Details)
}

func TestFieldErrorOmitsEmptyField(t *testing.T) {
	body, err := json.Marshal(FieldError{Message: "must be an integer"})
	require.NoError(t, err)
	require.JSONEq(t, `{"message":"must be an integer"}`, string(body))
}
