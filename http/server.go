package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Server is a gin-backed Registrar. It carries the cross-cutting routes:
// CORS, unknown route and ping.
type Server struct {
	engine *gin.Engine
}

func NewServer() *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	// CORS
	engine.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, PUT, POST, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Accept-Language, Authorization, Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusOK)
		}
		c.Next()
	})

	// Unknown route
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Page not found"})
	})

	// Ping
	engine.GET("/nexus/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, map[string]string{"data": "ok"})
	})

	return &Server{engine: engine}
}

// RegisterHandler mounts a handler on the router, exposing the URI
// parameters in the request context under "params", where the decoders
// expect them.
func (s *Server) RegisterHandler(path, method string, handler http.Handler) {
	s.engine.Handle(method, path, func(c *gin.Context) {
		params := make(map[string]string)
		for _, p := range c.Params {
			params[p.Key] = p.Value
		}

		ctx := context.WithValue(c.Request.Context(), "params", params)
		handler.ServeHTTP(c.Writer, c.Request.WithContext(ctx))
	})
}

// Handler returns the server as a plain http.Handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run starts the server on addr, blocking until it stops.
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}
