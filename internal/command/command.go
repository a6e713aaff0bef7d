package command

import (
	commandHandler "storelink/internal/command/handler"

	"github.com/google/wire"
	"github.com/spf13/cobra"
)

var ProviderSet = wire.NewSet(NewCommand, commandHandler.NewPreviewHandler, commandHandler.NewURLHandler)

type Command struct {
	previewCommandHandler *commandHandler.PreviewHandler
	urlCommandHandler     *commandHandler.URLHandler
}

// NewCommand .
func NewCommand(
	previewCommandHandler *commandHandler.PreviewHandler,
	urlCommandHandler *commandHandler.URLHandler,
) *Command {
	return &Command{
		previewCommandHandler: previewCommandHandler,
		urlCommandHandler:     urlCommandHandler,
	}
}

type runner func(command *Command, cmd *cobra.Command, args []string) error

// bind 延後到執行時才建立依賴，避免 --help 也需要連線資料庫
func bind(newCmd func() (*Command, func(), error), run runner) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		command, cleanup, err := newCmd()
		if err != nil {
			return err
		}
		defer cleanup()
		return run(command, cmd, args)
	}
}

func Register(rootCmd *cobra.Command, newCmd func() (*Command, func(), error)) {
	previewCmd := &cobra.Command{Use: "preview", Short: "issue or verify preview tokens"}

	issueCmd := &cobra.Command{
		Use:   "issue",
		Short: "issue a preview token for a product in a store",
		RunE: bind(newCmd, func(command *Command, cmd *cobra.Command, args []string) error {
			return command.previewCommandHandler.Issue(cmd, args)
		}),
	}
	issueCmd.Flags().Int("product", 0, "product id")
	issueCmd.Flags().Int("store", 0, "store id")
	issueCmd.Flags().Int64("ttl", 0, "token lifetime in seconds (0 uses the configured default)")
	issueCmd.Flags().String("subject", "cli", "operator recorded in the audit log")

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "verify a preview token",
		RunE: bind(newCmd, func(command *Command, cmd *cobra.Command, args []string) error {
			return command.previewCommandHandler.Verify(cmd, args)
		}),
	}
	verifyCmd.Flags().Int("product", 0, "product id")
	verifyCmd.Flags().Int("store", 0, "store id")
	verifyCmd.Flags().String("token", "", "preview token")
	previewCmd.AddCommand(issueCmd, verifyCmd)

	urlsCmd := &cobra.Command{Use: "urls", Short: "resolve storefront urls"}
	productCmd := &cobra.Command{
		Use:   "product <id>",
		Short: "list storefront urls of a product",
		Args:  cobra.ExactArgs(1),
		RunE: bind(newCmd, func(command *Command, cmd *cobra.Command, args []string) error {
			return command.urlCommandHandler.Product(cmd, args)
		}),
	}
	cmsCmd := &cobra.Command{
		Use:   "cms <id>",
		Short: "list storefront urls of a cms page",
		Args:  cobra.ExactArgs(1),
		RunE: bind(newCmd, func(command *Command, cmd *cobra.Command, args []string) error {
			return command.urlCommandHandler.CmsPage(cmd, args)
		}),
	}
	categoryCmd := &cobra.Command{
		Use:   "category <id>",
		Short: "resolve the storefront url of a category",
		Args:  cobra.ExactArgs(1),
		RunE: bind(newCmd, func(command *Command, cmd *cobra.Command, args []string) error {
			return command.urlCommandHandler.Category(cmd, args)
		}),
	}
	categoryCmd.Flags().String("store", "", "store id or code")
	urlsCmd.AddCommand(productCmd, cmsCmd, categoryCmd)

	rootCmd.AddCommand(previewCmd, urlsCmd)
}
