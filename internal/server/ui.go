package server

import (
	"embed"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed static/index.html
var staticFS embed.FS

// registerUI serves the embedded trip-planning form. The page posts to the
// same /api/plan endpoint as API callers; the pipeline is shared.
func registerUI(e *echo.Echo) {
	e.GET("/ui", func(c echo.Context) error {
		page, err := staticFS.ReadFile("static/index.html")
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "form page unavailable")
		}
		return c.HTMLBlob(http.StatusOK, page)
	})
}
