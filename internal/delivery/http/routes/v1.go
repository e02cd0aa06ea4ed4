package routes

import (
	"panduan-karier/internal/config"
	"panduan-karier/internal/database"
	v1 "panduan-karier/internal/delivery/http/routes/v1"
	"panduan-karier/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, cfg config.Config, db database.DB, redis *cache.Redis) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, db, redis)
}
