package services

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	log "github.com/sirupsen/logrus"

	"github.com/lac-hong-legacy/guestbook_api/docs"
	"github.com/lac-hong-legacy/guestbook_api/middleware"
	"github.com/lac-hong-legacy/guestbook_api/services/handlers"
	"github.com/lac-hong-legacy/guestbook_api/shared"
)

type HttpService struct {
	context.DefaultService

	guestbookSvc  *GuestbookService
	monitoringSvc *MonitoringService

	port         int
	allowOrigins string
	app          *fiber.App
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *context.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	svc.allowOrigins = getEnv("CORS_ALLOW_ORIGINS", "*")

	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) Start() error {
	svc.guestbookSvc = svc.Service(GUESTBOOK_SVC).(*GuestbookService)
	if monitoringSvc, ok := svc.Service(MONITORING_SVC).(*MonitoringService); ok {
		svc.monitoringSvc = monitoringSvc
	}

	svc.app = NewApp(svc.guestbookSvc, svc.monitoringSvc, svc.allowOrigins)

	log.WithField("port", svc.port).Info("HTTP server listening")
	return svc.app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) Shutdown() {
	if svc.app != nil {
		_ = svc.app.Shutdown()
	}
}

// NewApp builds the fiber application. monitoringSvc may be nil.
func NewApp(guestbookSvc handlers.GuestbookServiceInterface, monitoringSvc *MonitoringService, allowOrigins string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               SERVICE_NAME,
		DisableStartupMessage: true,
		JSONEncoder:           shared.JSONAPI.Marshal,
		JSONDecoder:           shared.JSONAPI.Unmarshal,
		ErrorHandler:          HandleError,
	})

	docs.SwaggerInfo.BasePath = ""
	app.Use(recover.New())

	if os.Getenv("LOG_LEVEL") == "TRACE" {
		app.Use(logger.New())
	}
	if monitoringSvc != nil {
		app.Use(MonitoringMiddleware(monitoringSvc))
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, X-Client-ID",
	}))

	app.Get("/ping", ping)
	app.Get("/swagger/*", swagger.HandlerDefault)

	v1 := app.Group("/api/v1")
	v1.Get("/ping", ping)

	guestbookHandler := handlers.NewGuestbookHandler(guestbookSvc)
	guestbook := v1.Group("/guestbook", middleware.ClientIdentifier())
	guestbook.Get("/", guestbookHandler.List)
	guestbook.Post("/", guestbookHandler.Submit)
	guestbook.Get("/stats", guestbookHandler.Stats)

	app.Use(shared.ResponseNotFound)

	return app
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Accept  json
// @Produce json
// @Success 200 {object} shared.Response{data=string}
// @Router /ping [get]
func ping(c *fiber.Ctx) error {
	c.Set(fiber.HeaderCacheControl, "max-age=10")

	return shared.ResponseOK(c, "pong")
}

// HandleError is the fiber error handler. Expected outcomes (validation, rate
// limiting) are logged at debug; everything else at error.
func HandleError(c *fiber.Ctx, err error) error {
	if appErr, ok := shared.GetAppError(err); ok {
		entry := log.WithFields(log.Fields{
			"path": c.Path(),
			"kind": appErr.Kind,
		})
		if appErr.StatusCode >= fiber.StatusInternalServerError {
			entry.WithError(err).Error("Request failed")
		} else {
			entry.Debug(appErr.Message)
		}
	} else {
		log.WithError(err).WithField("path", c.Path()).Warn("Unhandled request error")
	}

	return shared.ResponseError(c, err)
}
