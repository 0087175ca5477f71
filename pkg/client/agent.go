package client

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/adcontextprotocol/adcp-go/pkg/adcp"
	"github.com/adcontextprotocol/adcp-go/pkg/webhook"
)

// AgentConfig describes a remote AdCP agent endpoint.
type AgentConfig struct {
	ID        string         `json:"id"`
	AgentURI  string         `json:"agent_uri"`
	Transport adcp.Transport `json:"protocol"`

	// WebhookSecret is the shared secret for MCP-style signed deliveries.
	// Never serialized.
	WebhookSecret string `json:"-"`
}

// AgentClient is the buyer-side entry point for a single agent. It owns the
// webhook normalization handler configured with the agent's secret.
type AgentClient struct {
	Config  AgentConfig
	handler *webhook.Handler
}

// NewAgentClient creates a client for the agent described by config.
func NewAgentClient(config AgentConfig) *AgentClient {
	return &AgentClient{
		Config:  config,
		handler: webhook.NewHandler(config.WebhookSecret),
	}
}

/*
HandleWebhook normalizes a raw webhook delivery from this agent into the
canonical task result. signature comes from the X-AdCP-Signature header and
may be empty for unsigned deliveries and task-protocol payloads.
*/
func (client *AgentClient) HandleWebhook(raw []byte, taskType, operationID, signature string) (*adcp.TaskResult, error) {
	log.Debug("handling webhook",
		"agent", client.Config.ID,
		"task_type", taskType,
		"operation_id", operationID,
	)

	return client.handler.HandleWebhook(raw, taskType, operationID, signature)
}

// NewOperationID generates a fresh caller-side operation identifier.
func NewOperationID() string {
	return "op_" + uuid.NewString()
}
