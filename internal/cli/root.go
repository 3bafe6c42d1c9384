// Package cli defines the cobra command tree for realty-api.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "realty-api",
		Short:         "REST API for the realty marketing site",
		Long:          "Backend for the realty marketing site: property listings, inquiries, galleries, testimonials, blog posts, team members, and admin accounts over MongoDB.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(),
		newVersionCmd(),
	)

	return root
}
