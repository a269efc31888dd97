package ginmw

import "github.com/gin-gonic/gin"

// Route describes a single route handled by a router built with SetupRouter.
type Route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// SetupRouter builds a gin engine with the JSON error interceptor installed
// as the outermost middleware, so every response produced by the given
// routes and middlewares is normalized.
func SetupRouter(routes []Route, middlewares ...gin.HandlerFunc) *gin.Engine {
	return SetupRouterWithOptions(routes, nil, middlewares...)
}

// SetupRouterWithOptions is like SetupRouter but passes the given options to
// the JSON error interceptor.
func SetupRouterWithOptions(routes []Route, opts []Option, middlewares ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()

	router.Use(JSONError(opts...))

	// Apply middlewares in reverse order
	for i := len(middlewares) - 1; i >= 0; i-- {
		router.Use(middlewares[i])
	}

	// Generate all the routes
	for _, route := range routes {
		router.Handle(route.Method, route.Path, route.Handler)
	}

	return router
}
