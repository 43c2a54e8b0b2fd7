package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/JasonLazzuri/Mesophy-sub003/internal/db"
	"github.com/JasonLazzuri/Mesophy-sub003/internal/http/api"
	adminapi "github.com/JasonLazzuri/Mesophy-sub003/internal/http/api/admin/endpoints"
	clientapi "github.com/JasonLazzuri/Mesophy-sub003/internal/http/api/tv/endpoints"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, env Environment, store db.Store) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		ExposeHeaders: []string{
			"Content-Length",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/admin",
		Auth:   false,
	},
		adminapi.AuthPublicModule(env.SecretKey, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      true,
		SecretKey: env.SecretKey,
		Store:     store,
	},
		adminapi.ScreenModule(store),
		adminapi.ScheduleModule(store),
		adminapi.PollingModule(store),
		adminapi.PlaylistModule(store),
		// session endpoints that require auth
		adminapi.AuthSessionModule(env.SecretKey, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/tv",
	},
		clientapi.PairingModule(store),
		clientapi.CheckinModule(store),
	)
}
