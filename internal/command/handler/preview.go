package command

import (
	"context"
	"encoding/json"
	"fmt"

	"storelink/internal/dto"
	"storelink/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type previewIssuer interface {
	Issue(ctx context.Context, req *dto.IssuePreviewTokenDto, subject, source string) (*dto.PreviewTokenResponseDto, error)
	Verify(ctx context.Context, req *dto.VerifyPreviewTokenDto) *dto.VerifyPreviewTokenResponseDto
}

type PreviewHandler struct {
	logger         *zap.Logger
	previewService previewIssuer
}

func NewPreviewHandler(logger *zap.Logger, previewService *service.PreviewService) *PreviewHandler {
	return &PreviewHandler{logger: logger, previewService: previewService}
}

// Issue 例如 app preview issue --product 42 --store 1 --ttl 600
func (handler *PreviewHandler) Issue(cmd *cobra.Command, _ []string) error {
	productID, _ := cmd.Flags().GetInt("product")
	storeID, _ := cmd.Flags().GetInt("store")
	ttl, _ := cmd.Flags().GetInt64("ttl")
	subject, _ := cmd.Flags().GetString("subject")
	if productID <= 0 || storeID <= 0 {
		return fmt.Errorf("--product and --store must be positive")
	}

	res, err := handler.previewService.Issue(commandContext(cmd), &dto.IssuePreviewTokenDto{
		ProductID:  productID,
		StoreID:    storeID,
		TTLSeconds: ttl,
	}, subject, service.PreviewSourceCLI)
	if err != nil {
		return err
	}
	return printJSON(cmd, res)
}

// Verify 例如 app preview verify --product 42 --store 1 --token ...
func (handler *PreviewHandler) Verify(cmd *cobra.Command, _ []string) error {
	productID, _ := cmd.Flags().GetInt("product")
	storeID, _ := cmd.Flags().GetInt("store")
	token, _ := cmd.Flags().GetString("token")

	res := handler.previewService.Verify(commandContext(cmd), &dto.VerifyPreviewTokenDto{
		Token:     token,
		ProductID: productID,
		StoreID:   storeID,
	})
	return printJSON(cmd, res)
}

func printJSON(cmd *cobra.Command, v any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
