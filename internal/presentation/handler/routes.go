package handler

import (
	"github.com/labstack/echo/v4"

	"petstar/internal/presentation/middleware"
)

type Handlers struct {
	Postings *PostingHandler
	Videos   *VideoHandler
	Pets     *PetHandler
	Users    *UserHandler
}

// Register mounts every api route under g. Mutating routes require a requester.
func Register(g *echo.Group, h Handlers) {
	g.Use(middleware.Requester())
	required := middleware.RequireRequester()

	posts := g.Group("/posts")
	posts.POST("", h.Postings.HandleCreate, required)
	posts.GET("/:id", h.Postings.HandleGet)
	posts.PATCH("/:id", h.Postings.HandleUpdate, required)
	posts.DELETE("/:id", h.Postings.HandleDelete, required)

	videos := g.Group("/videos")
	videos.POST("", h.Videos.HandleCreate, required)
	videos.GET("/:id", h.Videos.HandleGet)
	videos.PATCH("/:id", h.Videos.HandleUpdate, required)
	videos.DELETE("/:id", h.Videos.HandleDelete, required)

	pets := g.Group("/pets")
	pets.POST("", h.Pets.HandleCreate, required)
	pets.GET("/:id", h.Pets.HandleGet)
	pets.PUT("/:id", h.Pets.HandleUpdate)
	pets.DELETE("/:id", h.Pets.HandleDelete)

	users := g.Group("/users")
	users.POST("", h.Users.HandleCreate)
	users.GET("/me", h.Users.HandleMe, required)
	users.GET("/:id", h.Users.HandleGet)
}
