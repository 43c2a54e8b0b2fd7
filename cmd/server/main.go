package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/JasonLazzuri/Mesophy-sub003/internal/db"
	"github.com/JasonLazzuri/Mesophy-sub003/internal/http/middleware"
	"github.com/JasonLazzuri/Mesophy-sub003/internal/redis"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	env := LoadEnvironment()

	// initialize PostgreSQL
	if err := db.Init(env.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init")
	}

	// run pending migrations
	if err := db.RunMigrations(env.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate")
	}

	// schedule snapshot cache
	if env.RedisAddress != "" {
		redis.InitRedis(env.RedisAddress, env.RedisUsername, env.RedisPassword)
	}

	// device notification channel; the system degrades to pure polling
	// without a broker
	if env.MQTTBrokerURL != "" {
		middleware.SetBrokerURL(env.MQTTBrokerURL)
	}
	if err := middleware.InitMQTT(); err != nil {
		log.Warn().Err(err).Msg("MQTT unavailable, devices will rely on polling only")
	}
	defer middleware.CleanupMQTT()

	store := db.NewStore()

	r := gin.Default()
	RegisterRoutes(r, env, store)

	log.Info().Str("address", env.ServerAddress).Msg("listening")
	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
