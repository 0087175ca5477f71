package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/adcontextprotocol/adcp-go/pkg/lookup"
)

var (
	lookupCmd = &cobra.Command{
		Use:   "lookup",
		Short: "Query the AdCP registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	brandCmd = &cobra.Command{
		Use:   "brand <domain>",
		Short: "Resolve a domain to its brand identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			brand, err := registryClient().LookupBrand(args[0])
			if err != nil {
				return err
			}
			return printJSON(brand)
		},
	}

	propertyCmd = &cobra.Command{
		Use:   "property <domain>",
		Short: "Resolve a domain to its media property",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			property, err := registryClient().LookupProperty(args[0])
			if err != nil {
				return err
			}
			return printJSON(property)
		},
	}

	memberCmd = &cobra.Command{
		Use:   "member <id>",
		Short: "Fetch a registry member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			member, err := registryClient().GetMember(args[0])
			if err != nil {
				return err
			}
			return printJSON(member)
		},
	}
)

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.AddCommand(brandCmd)
	lookupCmd.AddCommand(propertyCmd)
	lookupCmd.AddCommand(memberCmd)
}

func registryClient() *lookup.Client {
	return lookup.NewClient(viper.GetString("endpoints.registry"))
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
