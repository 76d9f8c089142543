package app

import (
	"context"
	"fmt"
	"net/http"

	"invitation-studio/app/controller"
	"invitation-studio/app/router"
	"invitation-studio/catalog"
	"invitation-studio/config"
	"invitation-studio/db"
	"invitation-studio/export"
	"invitation-studio/logger"
	"invitation-studio/repository"
	"invitation-studio/service"
)

// App is the wired application
type App struct {
	Handler http.Handler
	closers []func() error
}

// Close releases the storage connections
func (a *App) Close() error {
	var firstErr error
	for _, c := range a.closers {
		if err := c(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// abort releases whatever was opened before a failed Initialize and returns err
func (a *App) abort(err error) error {
	if closeErr := a.Close(); closeErr != nil {
		logger.Log.Warnf("⚠️ Failed to release storage after startup error: %v", closeErr)
	}
	return err
}

// Initialize initializes the application
func Initialize(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{}

	store, err := a.openStore(ctx, cfg)
	if err != nil {
		return nil, a.abort(err)
	}

	templates := catalog.Default()
	baseURL := cfg.PublicBaseURL()

	// Repositories
	cartRepo := repository.NewCartRepository(store)
	customizationRepo := repository.NewCustomizationRepository(store)
	invitationRepo := repository.NewInvitationRepository(store)
	rsvpRepo := repository.NewRSVPRepository(store)
	orderRepo := repository.NewOrderRepository(store)

	// Rendering and export
	renderService, err := service.NewRenderService()
	if err != nil {
		return nil, a.abort(err)
	}
	chromePath := export.DetectChromePath(cfg.ChromePath)
	if chromePath == "" {
		logger.Log.Warn("⚠️ Chrome/Chromium not found in common locations, letting chromedp auto-detect")
	}
	exporter := export.New(export.NewChromeRasterizer(chromePath), cfg.ExportTimeout)
	exportService := service.NewExportService(renderService, exporter)

	// Template images
	imageSource, err := newImageSource(ctx, cfg)
	if err != nil {
		return nil, a.abort(err)
	}
	optimizer := service.NewImageOptimizer(cfg.ImageCacheDir)
	if err := optimizer.EnsureCacheDir(); err != nil {
		logger.Log.Warnf("⚠️ Image cache disabled: %v", err)
	}

	// Services
	cartService := service.NewCartService(templates, cartRepo)
	customizationService := service.NewCustomizationService(templates, customizationRepo, cartService)
	publisherService := service.NewPublisherService(invitationRepo)
	rsvpService := service.NewRSVPService(publisherService, rsvpRepo)
	orderService := service.NewOrderService(orderRepo)
	gateway := service.NewHTTPPaymentGateway(cfg.PaymentSessionURL, cfg.PaymentCheckoutURL, nil)
	checkoutService := service.NewCheckoutService(cartService, orderRepo, gateway)
	imageService := service.NewTemplateImageService(imageSource, optimizer)

	// Create controllers
	controllers := &router.Controllers{
		Catalog:       controller.NewCatalogController(templates),
		Cart:          controller.NewCartController(cartService, checkoutService, baseURL),
		Customization: controller.NewCustomizationController(templates, customizationService, publisherService, exportService, renderService, orderService, baseURL),
		Invitation:    controller.NewInvitationController(publisherService, renderService, exportService, rsvpService, baseURL),
		Share:         controller.NewShareController(),
		Order:         controller.NewOrderController(orderService),
		TemplateImage: controller.NewTemplateImageController(imageService),
	}

	a.Handler = router.NewRouter(controllers)
	logger.Log.WithField("storage", cfg.StorageDriver).Info("✓ Application initialized")
	return a, nil
}

func (a *App) openStore(ctx context.Context, cfg *config.Config) (repository.KeyValueStore, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		if err := db.InitDB(ctx, cfg.Database); err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		a.closers = append(a.closers, db.CloseDB)
		return repository.NewPostgresStore(db.DB), nil
	case config.StorageRedis:
		client, err := db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Close)
		return repository.NewRedisStore(client, "invitation-studio:"), nil
	default:
		logger.Log.Warn("⚠️ Using in-memory storage, data is lost on restart")
		return repository.NewMemoryStore(), nil
	}
}

func newImageSource(ctx context.Context, cfg *config.Config) (service.ImageSource, error) {
	if !cfg.DriveEnabled() {
		return service.NewLocalImageSource(cfg.TemplateImageDir), nil
	}

	driveService, err := service.NewDriveService(ctx, cfg.GoogleCredentialsPath, cfg.TemplateDriveFolderID)
	if err != nil {
		return nil, err
	}
	logger.Log.WithField("folder_id", cfg.TemplateDriveFolderID).Info("✓ Template images served from Google Drive")
	return driveService, nil
}
