package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

var (
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.AddRoutes(routes...)
		}
	}
)

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler
}

type Router struct {
	router *httprouter.Router
}

type ConfigRouter func(router *Router)

func New(configs ...ConfigRouter) Router {
	router := &Router{
		router: httprouter.New(),
	}

	for _, config := range configs {
		config(router)
	}

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes registers routes, wrapping each handler with its own
// middlewares from last to first.
func (r Router) AddRoutes(routes ...Route) {
	for i := range routes {
		route := routes[i]

		var handler http.Handler = route.Handler
		for j := len(route.Middlewares) - 1; j >= 0; j-- {
			handler = route.Middlewares[j](handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
	}
}
