package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleQuery struct {
	Zone   string `query:"tz" default:"UTC" validate:"timezone"`
	Codes  string `query:"codes" validate:"required"`
	Name   string `query:"name" validate:"max=4"`
	Format string `query:"format" default:"html" validate:"oneof=html text"`
}

func bindQuery(t *testing.T, target string) (sampleQuery, []ValidationError) {
	t.Helper()
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, target, nil), httptest.NewRecorder())

	var q sampleQuery
	res := ReadAndValidateRequest(c, &q)
	if res == nil {
		return q, nil
	}
	errs, ok := res.([]ValidationError)
	require.True(t, ok)
	return q, errs
}

func TestReadAndValidateRequest_Defaults(t *testing.T) {
	q, errs := bindQuery(t, "/?codes=NYSE")
	require.Empty(t, errs)
	assert.Equal(t, "UTC", q.Zone)
	assert.Equal(t, "html", q.Format)
}

func TestReadAndValidateRequest_Messages(t *testing.T) {
	_, errs := bindQuery(t, "/?tz=Mars/Base&name=toolong&format=pdf")
	require.Len(t, errs, 4)

	byField := map[string]ValidationError{}
	for _, e := range errs {
		byField[e.Field] = e
	}

	assert.Equal(t, "ERR_TIMEZONE", byField["tz"].Code)
	assert.Equal(t, "tz must be an IANA timezone name", byField["tz"].Message)

	assert.Equal(t, "ERR_REQUIRED", byField["codes"].Code)
	assert.Equal(t, "codes is required", byField["codes"].Message)

	assert.Equal(t, "name must be at most 4 characters", byField["name"].Message)
	assert.Equal(t, "4", byField["name"].Params["max"])

	assert.Equal(t, "format must be one of: html, text", byField["format"].Message)
	assert.Equal(t, []string{"html", "text"}, byField["format"].Params["options"])
}
