package stubserver

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// buildRouter wires the stub routes over the fixture store.
func buildRouter(logger *logrus.Logger, data *fixtures) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/healthz", healthHandler)

	router.GET("/products", listProductsHandler(data))
	router.POST("/signup", signUpHandler(data))
	router.POST("/login", loginHandler(data))
	router.POST("/checkout", checkoutHandler(data))
	router.GET("/orders/:userID", ordersHandler(data))

	router.POST("/admin/login", adminLoginHandler(data))
	router.GET("/admin/stats", adminStatsHandler(data))
	router.GET("/admin/products", adminListProductsHandler(data))
	router.POST("/admin/products", createProductHandler(data))
	router.PUT("/admin/products/:id", updateProductHandler(data))
	router.DELETE("/admin/products/:id", deleteProductHandler(data))
	router.PUT("/admin/products/:id/soldout", markSoldOutHandler(data))

	return router
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
