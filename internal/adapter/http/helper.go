package http

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"loanportal-backend/internal/adapter/middleware"
	"loanportal-backend/internal/domain/fault"
	"loanportal-backend/internal/domain/user"
)

// ---- response envelope ----

type successBody struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

type errorBody struct {
	Success bool       `json:"success"`
	Error   string     `json:"error"`
	Kind    fault.Kind `json:"kind"`
}

func respond(c echo.Context, code int, data any) error {
	return c.JSON(code, successBody{Success: true, Data: data})
}

// respondErr maps fault kinds to stable status codes; anything unclassified
// is logged and surfaced as an opaque 500.
func respondErr(c echo.Context, err error) error {
	kind := fault.KindOf(err)
	code := http.StatusInternalServerError
	switch kind {
	case fault.KindNotFound:
		code = http.StatusNotFound
	case fault.KindInvalidState:
		code = http.StatusConflict
	case fault.KindInvalidArgument:
		code = http.StatusBadRequest
	case fault.KindUpstream:
		code = http.StatusBadGateway
	case fault.KindPartial:
		code = http.StatusInternalServerError
	case fault.KindInternal:
		log.Printf("http: %s %s: %v", c.Request().Method, c.Path(), err)
	}
	return c.JSON(code, errorBody{Success: false, Error: fault.Message(err), Kind: kind})
}

// ---- auth context accessors ----

func actorID(c echo.Context) string {
	id, _ := c.Get(middleware.CtxUserID).(string)
	return id
}

func isAdmin(c echo.Context) bool {
	role, _ := c.Get(middleware.CtxRole).(string)
	return role == string(user.RoleAdmin)
}
