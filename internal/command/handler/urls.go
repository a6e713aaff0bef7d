package command

import (
	"context"
	"fmt"
	"strconv"

	"storelink/internal/core"
	"storelink/internal/dto"
	"storelink/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type urlLister interface {
	ListURLs(ctx context.Context, entityType core.EntityType, entityID int) ([]dto.StoreURLDto, error)
	CategoryURL(ctx context.Context, categoryID int, store string) (*dto.StoreURLDto, error)
}

type URLHandler struct {
	logger          *zap.Logger
	storeURLService urlLister
}

func NewURLHandler(logger *zap.Logger, storeURLService *service.StoreURLService) *URLHandler {
	return &URLHandler{logger: logger, storeURLService: storeURLService}
}

func (handler *URLHandler) Product(cmd *cobra.Command, args []string) error {
	return handler.list(cmd, core.EntityTypeProduct, args)
}

func (handler *URLHandler) CmsPage(cmd *cobra.Command, args []string) error {
	return handler.list(cmd, core.EntityTypeCmsPage, args)
}

// Category 例如 app urls category 10 --store french
func (handler *URLHandler) Category(cmd *cobra.Command, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	store, _ := cmd.Flags().GetString("store")
	url, err := handler.storeURLService.CategoryURL(commandContext(cmd), id, store)
	if err != nil {
		return err
	}
	return printJSON(cmd, url)
}

func (handler *URLHandler) list(cmd *cobra.Command, entityType core.EntityType, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	urls, err := handler.storeURLService.ListURLs(commandContext(cmd), entityType, id)
	if err != nil {
		return err
	}
	handler.logger.Debug("store urls resolved",
		zap.String("entityType", string(entityType)),
		zap.Int("entityId", id),
		zap.Int("count", len(urls)),
	)
	return printJSON(cmd, urls)
}

func parseID(args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected exactly one id argument")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", args[0], err)
	}
	return id, nil
}
