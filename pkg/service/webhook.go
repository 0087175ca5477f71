package service

import (
	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/adcontextprotocol/adcp-go/pkg/adcp"
	"github.com/adcontextprotocol/adcp-go/pkg/webhook"
)

/*
WebhookServer receives AdCP webhook deliveries over HTTP and runs each one
through the normalization pipeline. It is safe for concurrent use: the
handler is stateless and every delivery is independent.
*/
type WebhookServer struct {
	app     *fiber.App
	handler *webhook.Handler
	addr    string
}

/*
NewWebhookServer constructs a server configured from viper: webhook.secret
for signed MCP deliveries and webhook.addr for the listen address.
*/
func NewWebhookServer() *WebhookServer {
	v := viper.GetViper()

	return &WebhookServer{
		app: fiber.New(fiber.Config{
			AppName:      "AdCP-Webhook-Receiver",
			ServerHeader: "AdCP-Webhook-Receiver",
		}),
		handler: webhook.NewHandler(v.GetString("webhook.secret")),
		addr:    v.GetString("webhook.addr"),
	}
}

func (srv *WebhookServer) Start() error {
	srv.app.Use(logger.New(), healthcheck.New())

	srv.app.Get("/", srv.handleRoot)
	srv.app.Post("/webhook/:taskType/:operationID", srv.handleWebhook)

	return srv.app.Listen(srv.addr, fiber.ListenConfig{DisableStartupMessage: true})
}

func (srv *WebhookServer) handleRoot(ctx fiber.Ctx) error {
	return ctx.SendString("OK")
}

/*
handleWebhook is the delivery endpoint. The route encodes the task type and
the caller's operation id; the signature, when present, comes from the
X-AdCP-Signature header. Validation and signature failures map to 4xx so the
sender does not retry a delivery this receiver will never accept.
*/
func (srv *WebhookServer) handleWebhook(ctx fiber.Ctx) error {
	taskType := ctx.Params("taskType")
	operationID := ctx.Params("operationID")
	if operationID == "" {
		operationID = "op_" + uuid.NewString()
	}

	result, err := srv.handler.HandleWebhook(
		ctx.Body(),
		taskType,
		operationID,
		ctx.Get(webhook.HeaderSignature),
	)

	if err != nil {
		switch err.(type) {
		case *adcp.WebhookSignatureError:
			return ctx.Status(fiber.StatusUnauthorized).SendString(err.Error())
		case *adcp.WebhookValidationError, *adcp.UnknownStatusError:
			return ctx.Status(fiber.StatusBadRequest).SendString(err.Error())
		default:
			return ctx.Status(fiber.StatusInternalServerError).SendString(err.Error())
		}
	}

	log.Info("webhook delivery normalized",
		"task", result.Metadata["task_id"],
		"operation", operationID,
		"status", result.Status,
		"success", result.Success,
	)

	return ctx.Status(fiber.StatusOK).JSON(result)
}
