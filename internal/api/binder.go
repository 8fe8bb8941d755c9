package api

import (
	"io"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	"github.com/tangiwai/cordis-summary/internal/pkg/constants"
)

// Binder decodes JSON bodies with sonic and defers everything else to echo's
// default binder.
type Binder struct {
	fallback echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i interface{}, ctx echo.Context) error {
	req := ctx.Request()
	if req.ContentLength != 0 &&
		strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return constants.ErrBadRequest
		}
		if err := sonic.Unmarshal(body, i); err != nil {
			return constants.ErrBadRequest
		}
		return nil
	}

	return b.fallback.Bind(i, ctx)
}
