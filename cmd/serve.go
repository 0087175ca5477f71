package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/adcontextprotocol/adcp-go/pkg/service"
)

var (
	addrFlag string

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the webhook receiver",
		Long:  longServe,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addrFlag != "" {
				viper.Set("webhook.addr", addrFlag)
			}
			return service.NewWebhookServer().Start()
		},
	}
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&addrFlag, "addr", "a", "", "Listen address (overrides config)")
}

var longServe = `
Run the AdCP webhook receiver.

Deliveries are accepted on POST /webhook/:task_type/:operation_id, verified
when an X-AdCP-Signature header is present, and normalized into the
canonical task result.

Examples:
  # Listen on the configured address
  adcp-go serve

  # Listen on a specific port
  adcp-go serve --addr :8080
`
