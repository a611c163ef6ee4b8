package routes

import (
	"github.com/gin-gonic/gin"

	"product-api/app/categories"
	"product-api/app/products"
	"product-api/app/system"
)

func Register(router *gin.Engine, products *products.Handler, categories *categories.Handler, system *system.Handler) {
	v1 := router.Group("/v1")
	{
		v1.GET("/categories", categories.HandleList)

		v1.GET("/products", products.HandleList)
		v1.POST("/products", products.HandleCreate)
		v1.GET("/products/:id", products.HandleGet)
		v1.PUT("/products/:id", products.HandleUpdate)
		v1.PATCH("/products/:id", products.HandleUpdate)
		v1.DELETE("/products/:id", products.HandleDelete)
	}

	router.GET("/health", system.HandleHealth)
	router.GET("/version", system.HandleVersion)
}
