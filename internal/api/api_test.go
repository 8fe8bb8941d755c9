package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tangiwai/cordis-summary/internal/pkg/constants"
	"github.com/tangiwai/cordis-summary/internal/pkg/utils"
)

func TestHTTPErrorHandlerUnwrapsCodedError(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	httpErrorHandler(fmt.Errorf("cordis.Load: %w", constants.ErrNoCachedData), ctx)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "no cached CORDIS data")
}

func TestHTTPErrorHandlerDefaultsTo500(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	httpErrorHandler(fmt.Errorf("boom"), ctx)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestBinderDecodesJSON(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"newOnly":true}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	ctx := e.NewContext(req, httptest.NewRecorder())

	var body struct {
		NewOnly bool `json:"newOnly"`
	}
	require.NoError(t, NewBinder().Bind(&body, ctx))
	assert.True(t, body.NewOnly)
}

func TestBinderRejectsMalformedJSON(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"newOnly":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	ctx := e.NewContext(req, httptest.NewRecorder())

	var body struct{}
	assert.ErrorIs(t, NewBinder().Bind(&body, ctx), constants.ErrBadRequest)
}

func TestValidator(t *testing.T) {
	type payload struct {
		Countries []string `validate:"omitempty,dive,len=2"`
	}

	v := NewValidator()
	assert.NoError(t, v.Validate(&payload{Countries: []string{"NZ", "AU"}}))
	assert.Error(t, v.Validate(&payload{Countries: []string{"NZL"}}))
}

func TestAdminMiddleware(t *testing.T) {
	viper.Set(constants.ViperSecretKey, "test-secret")
	t.Cleanup(func() { viper.Set(constants.ViperSecretKey, "") })

	svc := &APIService{router: echo.New()}
	next := func(echo.Context) error { return nil }

	makeCtx := func(cookie string) echo.Context {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		if cookie != "" {
			req.AddCookie(&http.Cookie{Name: constants.CookieKeySecretToken, Value: cookie})
		}
		return svc.router.NewContext(req, httptest.NewRecorder())
	}

	err := svc.AdminMiddleware(next)(makeCtx(""))
	assert.ErrorIs(t, err, constants.ErrMissingAuthCookie)

	err = svc.AdminMiddleware(next)(makeCtx("garbage"))
	assert.ErrorIs(t, err, constants.ErrUnauthorized)

	wrongSecret, genErr := utils.GenerateAuthToken(&utils.AuthTokenWrapper{Secret: "other"})
	require.NoError(t, genErr)
	err = svc.AdminMiddleware(next)(makeCtx(wrongSecret))
	assert.ErrorIs(t, err, constants.ErrUnauthorized)

	good, genErr := utils.GenerateAuthToken(&utils.AuthTokenWrapper{Secret: "test-secret"})
	require.NoError(t, genErr)
	assert.NoError(t, svc.AdminMiddleware(next)(makeCtx(good)))
}
