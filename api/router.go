package api

import (
	"github.com/gofiber/fiber/v2"
)

// NewApp wires the handler into a fiber app under /api/v1.
func NewApp(handler SchedulerHandler) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/priority", handler.Priority)
		v1.Post("/srtf", handler.ShortestRemainingTimeFirst)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Post("/share", handler.EncodeShare)
		v1.Get("/share", handler.DecodeShare)
		v1.Get("/random", handler.Random)
	}

	return app
}
