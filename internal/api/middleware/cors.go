package middleware

import (
	"net/http"

	"cs-crm-backend/internal/auth"
	"cs-crm-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

// CORS applies the configured allowed origins. Credentials are allowed so the
// session cookie reaches the API from the web app.
func CORS(cfg *config.Config) gin.HandlerFunc {
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization", RequestIDHeader, auth.ServiceTokenHeader},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	})

	return func(ctx *gin.Context) {
		c.HandlerFunc(ctx.Writer, ctx.Request)
		if ctx.Request.Method == http.MethodOptions && ctx.GetHeader("Access-Control-Request-Method") != "" {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}
		ctx.Next()
	}
}
