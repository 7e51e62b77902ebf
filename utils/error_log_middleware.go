package utils

import (
	"log"

	"github.com/gin-gonic/gin"
)

type errorLogWriter struct {
	gin.ResponseWriter
	gc *gin.Context
}

func (w errorLogWriter) Write(b []byte) (int, error) {
	status := w.gc.Writer.Status()
	if status >= 400 {
		log.Printf("error response: %s %s -> %d: %s",
			w.gc.Request.Method, w.gc.Request.URL.Path, status, string(b))
	}
	return w.ResponseWriter.Write(b)
}

// ErrorLogMiddleware logs the body of every 4xx/5xx response. It reads the
// bytes as handlers write them, so it must be installed before gzip.
func ErrorLogMiddleware(c *gin.Context) {
	blw := &errorLogWriter{gc: c, ResponseWriter: c.Writer}
	c.Writer = blw
	c.Next()
}
