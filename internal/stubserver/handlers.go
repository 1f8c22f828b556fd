package stubserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type credentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Username string `json:"username"`
	Password string `json:"password" binding:"required"`
}

type checkoutRequest struct {
	UserID    string         `json:"user_id" binding:"required"`
	CartItems []checkoutLine `json:"cart_items"`
}

type productRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Brand       string  `json:"brand"`
	Image       string  `json:"image"`
	Year        string  `json:"year"`
}

func listProductsHandler(data *fixtures) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, data.listProducts())
	}
}

func signUpHandler(data *fixtures) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req credentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "email and password required"})
			return
		}
		user, err := data.signUp(req.Email, req.Username, req.Password)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
	}
}

func loginHandler(data *fixtures) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req credentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "email and password required"})
			return
		}
		user, ok := data.login(req.Email, req.Password)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid email or password"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
	}
}

func adminLoginHandler(data *fixtures) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req credentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "email and password required"})
			return
		}
		admin, ok := data.adminLogin(req.Email, req.Password)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid admin credentials"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "admin": admin})
	}
}

func checkoutHandler(data *fixtures) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "user_id required"})
			return
		}
		order, err := data.checkout(req.UserID, req.CartItems)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order placed", "order": order})
	}
}

func ordersHandler(data *fixtures) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, data.ordersFor(c.Param("userID")))
	}
}

func adminStatsHandler(data *fixtures) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, data.stats())
	}
}

func adminListProductsHandler(data *fixtures) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, data.listProducts())
	}
}

func createProductHandler(data *fixtures) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req productRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "name required"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "product": data.createProduct(req)})
	}
}

func updateProductHandler(data *fixtures) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req productRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "name required"})
			return
		}
		product, ok := data.updateProduct(c.Param("id"), req)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
	}
}

func deleteProductHandler(data *fixtures) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !data.deleteProduct(c.Param("id")) {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func markSoldOutHandler(data *fixtures) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := data.markSoldOut(c.Param("id"))
		if !ok {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
	}
}
