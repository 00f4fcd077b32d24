package employee

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the employee endpoints on r. Extra handlers (for
// example idempotency) run only on POST.
func RegisterRoutes(r gin.IRouter, handler *Handler, createMiddleware ...gin.HandlerFunc) {
	create := make([]gin.HandlerFunc, 0, len(createMiddleware)+1)
	create = append(append(create, createMiddleware...), handler.Create)

	employees := r.Group("/employees")
	{
		employees.GET("", handler.GetAll)
		employees.GET("/:id", handler.GetByID)
		employees.POST("", create...)
		employees.PUT("/:id", handler.Update)
		employees.DELETE("/:id", handler.Delete)
	}
}
