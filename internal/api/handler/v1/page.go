package v1

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/lucky-friday-api/internal/domain"
)

// PageHandler serves the bundled HTML pages with {{TOKEN}} substitution.
type PageHandler struct {
	webRoot string
	now     func() time.Time
}

func NewPageHandler(webRoot string, now func() time.Time) *PageHandler {
	if now == nil {
		now = time.Now
	}

	return &PageHandler{
		webRoot: webRoot,
		now:     now,
	}
}

// HandlePage renders web/<name>.html. The dashboard carries the weekday and
// date tokens, computed in the pool's home timezone.
func (h *PageHandler) HandlePage(name string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		content, err := os.ReadFile(filepath.Join(h.webRoot, name+".html"))
		if err != nil {
			ctx.String(http.StatusNotFound, "%s.html not found under web root.", name)
			return
		}

		now := domain.NowUTC7(h.now())
		page := string(content)
		page = strings.ReplaceAll(page, "{{WEEKDAY}}", now.Format("Monday"))
		page = strings.ReplaceAll(page, "{{DATE}}", now.Format("January 02, 2006"))

		ctx.Header("Content-Type", "text/html; charset=utf-8")
		ctx.String(http.StatusOK, "%s", page)
	}
}
