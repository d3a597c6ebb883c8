package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", Required(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": CallerID(c)})
	})
	return r
}

func TestRequired(t *testing.T) {
	r := newTestRouter()

	do := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		if header != "" {
			req.Header.Set(Header, header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("valid header passes through", func(t *testing.T) {
		w := do("42")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":42}`, w.Body.String())
	})

	t.Run("missing header", func(t *testing.T) {
		w := do("")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("non-numeric header", func(t *testing.T) {
		w := do("abc")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("non-positive header", func(t *testing.T) {
		for _, v := range []string{"0", "-5"} {
			w := do(v)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		}
	})
}
