// main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"grofast_backend/internals/configs"
	database "grofast_backend/internals/databases"
	authScheduler "grofast_backend/internals/features/auth/scheduler"
	chatHub "grofast_backend/internals/features/chat/hub"
	chatModel "grofast_backend/internals/features/chat/model"
	"grofast_backend/internals/middlewares"
	"grofast_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	if err := chatModel.SeedDefaultChannels(database.DB); err != nil {
		log.Printf("⚠️ channel seed failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "GROFAST Backend",
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    10 * 1024 * 1024, // selfies and attachments
	})

	app.Use(requestid.New())
	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))
	app.Use(etag.New())

	// Hard ceiling so a hung handler cannot hold a connection forever.
	app.Use(func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	})

	middlewares.SetupMiddlewares(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	hub := chatHub.New()
	route.SetupRoutes(app, database.DB, hub)

	authScheduler.StartBlacklistCleanupScheduler(database.DB)

	port := configs.GetEnv("PORT", "8080")
	go func() {
		log.Printf("🚀 GROFAST backend listening on :%s", port)
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("❌ server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("shutdown err: %v", err)
	}
	log.Println("👋 Bye")
}
