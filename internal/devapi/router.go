package devapi

import "github.com/gin-gonic/gin"

// NewRouter mounts the API on a gin engine.
func NewRouter(store *Store, tokens *Tokens) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), TraceID(), RequireAppID())

	h := NewHandler(store, tokens)
	r.POST("/users/login", h.Login)

	authed := r.Group("/", JWTAuth(tokens))
	authed.GET("/investorproducts", h.InvestorProducts)
	authed.POST("/oneoffpayments", h.OneOffPayment)

	return r
}
