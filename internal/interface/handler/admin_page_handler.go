package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AdminPageHandler は管理画面ページを配信します
// ページ本体はSPAが描画するため、ここではシェルHTMLのみ返します
// このルートに到達できるのはAdminGateを通過した管理者セッションだけです
type AdminPageHandler struct{}

// NewAdminPageHandler は新しいAdminPageHandlerを作成します
func NewAdminPageHandler() *AdminPageHandler {
	return &AdminPageHandler{}
}

const adminShellHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>GC Rental Admin</title>
</head>
<body>
  <div id="root"></div>
  <script type="module" src="/assets/admin.js"></script>
</body>
</html>
`

// Serve は管理画面のシェルHTMLを返します
// GET /admin, GET /admin/*
func (h *AdminPageHandler) Serve(c echo.Context) error {
	return c.HTML(http.StatusOK, adminShellHTML)
}
