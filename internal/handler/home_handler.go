// /internal/handler/home_handler.go
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

// HomeHandler renderiza a página inicial. O logout redireciona para cá,
// então a home também exibe flash messages.
type HomeHandler struct {
	Store *sessions.CookieStore
}

func (h *HomeHandler) ShowHomePage(c *gin.Context) {
	flashesSuccess, flashesError := lerFlashes(c, h.Store)

	c.HTML(http.StatusOK, "index.html", gin.H{
		"FlashesSuccess": flashesSuccess,
		"FlashesError":   flashesError,
	})
}
