package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nwcdlabs/codecommit-admin/pkg/config"
	"github.com/nwcdlabs/codecommit-admin/pkg/policydoc"
)

// policyRenderCmd represents the policy render command
var policyRenderCmd = &cobra.Command{
	Use:   "render TYPE [REPO_ARN...]",
	Short: "Render a policy document to stdout",
	Long: `Render the policy document for the given type without creating it.

TYPE is one of: readonly, developer, admin. Any repository ARNs given as
further arguments scope the document; with none the document grants access
to all repositories.

Example:
  ccadmin policy render readonly
  ccadmin policy render developer arn:aws-cn:codecommit:cn-north-1:123456789012:my_repo`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		policyType, err := policydoc.PolicyTypeString(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		templates, err := policydoc.NewTemplates(config.Get().TemplatePath, zap.NewNop())
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to load policy templates:", err)
			os.Exit(1)
		}

		document, err := templates.Build(policyType, args[1:])
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to render document:", err)
			os.Exit(1)
		}

		fmt.Println(document)
	},
}

func init() {
	policyCmd.AddCommand(policyRenderCmd)
}
