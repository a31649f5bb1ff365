package routes

import (
	"classifieds/controllers"
	_ "classifieds/docs"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Controllers struct {
	Ads      *controllers.AdController
	Comments *controllers.CommentController
	Users    *controllers.UserController
	Auth     *controllers.AuthController
}

// SetupRoutes registers every endpoint. auth guards the routes that need a
// caller identity.
func SetupRoutes(router *gin.Engine, ctrl Controllers, auth gin.HandlerFunc) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	router.POST("/register", ctrl.Auth.Register)
	router.POST("/login", ctrl.Auth.Login)

	router.GET("/images/:fileName", ctrl.Ads.GetImage)
	router.GET("/avatars/:fileName", ctrl.Users.GetAvatar)

	ads := router.Group("/ads")
	{
		ads.GET("", ctrl.Ads.GetAll)
		ads.GET("/:id", ctrl.Ads.Get)
		ads.GET("/:id/comments", ctrl.Comments.GetComments)
	}

	authAds := router.Group("/ads", auth)
	{
		authAds.POST("", ctrl.Ads.Create)
		authAds.GET("/me", ctrl.Ads.GetMe)
		authAds.GET("/me/export", ctrl.Ads.ExportMe)
		authAds.PATCH("/:id", ctrl.Ads.Update)
		authAds.DELETE("/:id", ctrl.Ads.Delete)
		authAds.PATCH("/:id/image", ctrl.Ads.UpdateImage)

		authAds.POST("/:id/comments", ctrl.Comments.AddComment)
		authAds.PATCH("/:id/comments/:commentId", ctrl.Comments.UpdateComment)
		authAds.DELETE("/:id/comments/:commentId", ctrl.Comments.DeleteComment)
	}

	users := router.Group("/users", auth)
	{
		users.GET("/me", ctrl.Users.GetMe)
		users.PATCH("/me", ctrl.Users.UpdateMe)
		users.PATCH("/me/image", ctrl.Users.UpdateAvatar)
		users.POST("/set_password", ctrl.Users.SetPassword)
	}
}
