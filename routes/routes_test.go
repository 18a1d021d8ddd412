package routes

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimestampRoute(t *testing.T) {
	app := SetupRouter()

	req, _ := http.NewRequest("GET", "/timestamp", nil)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestUnknownRoute(t *testing.T) {
	app := SetupRouter()

	req, _ := http.NewRequest("GET", "/nope", nil)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}
