package middleware

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/YourGothDaddy/fitness-tracker-sub000/cache"

	"github.com/gin-gonic/gin"
)

// cacheWriter tees the response body so a successful reply can be memoized.
type cacheWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *cacheWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// CacheResponse memoizes successful GET responses per (user, request URL)
// for the store's TTL. classes must name every resource type the response is
// derived from; a mutation of any of them invalidates the entry, so a hit
// can never outlive the data it was built on by more than the TTL.
func CacheResponse(store *cache.Store, classes ...cache.Class) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		userID, _ := UserID(c)
		key := fmt.Sprintf("%d:%s", userID, c.Request.URL.RequestURI())

		if payload, contentType, ok := store.Get(key); ok {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, contentType, payload)
			c.Abort()
			return
		}

		writer := &cacheWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()

		if c.Writer.Status() == http.StatusOK {
			store.Set(key, writer.Header().Get("Content-Type"), writer.body.Bytes(), classes...)
		}
	}
}
