package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/taskdeck/backend/api/handler"
	"github.com/taskdeck/backend/web"
)

type Handlers struct {
	Auth   *apiHandler.AuthHandler
	Task   *apiHandler.TaskHandler
	Health *apiHandler.HealthHandler
}

type Middleware func(fasthttp.RequestHandler) fasthttp.RequestHandler

func New(handlers Handlers, authGuard, cors Middleware) fasthttp.RequestHandler {
	r := router.New()

	r.GET("/health", handlers.Health.Check)
	r.GET("/test", handlers.Health.Check)

	// Auth routes
	r.POST("/auth/register", handlers.Auth.Register)
	r.POST("/auth/login", handlers.Auth.Login)
	r.GET("/auth/me", authGuard(handlers.Auth.Me))

	// Protected task routes
	r.GET("/tasks", authGuard(handlers.Task.List))
	r.POST("/tasks", authGuard(handlers.Task.Create))
	r.PATCH("/tasks/{id}", authGuard(handlers.Task.Update))
	r.DELETE("/tasks/{id}", authGuard(handlers.Task.Delete))

	// Embedded web client
	spa := web.Handler()
	r.GET("/", spa)
	r.GET("/static/{filepath:*}", spa)

	return cors(r.Handler)
}
