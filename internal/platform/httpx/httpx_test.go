package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondErrorMapsSentinels(t *testing.T) {
	cases := []struct {
		err    error
		status int
		title  string
		detail string
	}{
		{fmt.Errorf("page settings: %w", ErrNotFound), http.StatusNotFound, "Not Found", "page settings: resource not found"},
		{fmt.Errorf("width: %w", ErrValidation), http.StatusBadRequest, "Validation Failed", "width: validation failed"},
		{errors.New("db exploded"), http.StatusInternalServerError, "Internal Error", ""},
	}
	for _, tc := range cases {
		rr := httptest.NewRecorder()
		RespondError(rr, tc.err)
		require.Equal(t, tc.status, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

		var body ProblemDetail
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, tc.status, body.Status)
		assert.Equal(t, tc.title, body.Title)
		assert.Equal(t, tc.detail, body.Detail)
		assert.Equal(t, "about:blank", body.Type)
	}
}

func TestJSONWritesStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	JSON(rr, http.StatusAccepted, map[string]string{"page": "home"})
	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.JSONEq(t, `{"page":"home"}`, rr.Body.String())
	assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))
}
