package response

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccess(t *testing.T) {
	resp := Success(http.StatusCreated, "Record created.", map[string]string{"_id": "a"})

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Record created.", resp.Message)
	assert.NotNil(t, resp.Data)
}

func TestError(t *testing.T) {
	resp := Error(http.StatusNotFound, "The requested record was not found.")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Nil(t, resp.Data)

	t.Run("envelope shape is uniform on the wire", func(t *testing.T) {
		raw, err := json.Marshal(resp)
		require.NoError(t, err)
		assert.JSONEq(t, `{"data":null,"message":"The requested record was not found.","statusCode":404}`, string(raw))
	})
}
