package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"conectone/config"
	"conectone/internal/delivery"
	"conectone/internal/delivery/http"
	httpmiddleware "conectone/internal/delivery/http/middleware"
	"conectone/internal/delivery/http/router/handler"
	"conectone/internal/domain/service"
	"conectone/internal/infra/auth"
	logs "conectone/internal/infra/log"
	"conectone/internal/infra/notification"
	"conectone/internal/infra/persistence/postgres"
	"conectone/internal/infra/pubsub"
	"conectone/internal/infra/qrcode"
	"conectone/internal/infra/storage"
	"conectone/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAffiliateRepository,
			postgres.NewAdvertRepository,
			postgres.NewCompanyRepository,
			postgres.NewListingTierRepository,
			postgres.NewCategoryRepository,
			postgres.NewListingRepository,
			postgres.NewSchoolRepository,
			postgres.NewClassRepository,
			postgres.NewStaffRepository,
			postgres.NewLearnerRepository,
			postgres.NewAttendanceRepository,
			postgres.NewDisciplineRepository,
			postgres.NewActivityRepository,
			postgres.NewMessageRepository,
			postgres.NewNotificationRepository,
			postgres.NewDeviceRepository,
			postgres.NewFilingRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			pubsub.NewEventPublisher,
			newPushSender,
			newQRCodeService,
			newBlobStorage,
		),
	)
}

// newPushSender creates the Firebase sender when configured
func newPushSender(ctx context.Context, cfg *config.Config) (service.PushSender, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	sender, err := notification.NewFirebaseSender(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase sender: %w", err)
	}

	return sender, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newBlobStorage opens the upload bucket and hooks its close into shutdown
func newBlobStorage(lc fx.Lifecycle, ctx context.Context, cfg *config.Config) (service.FileStorage, error) {
	bucketURL := "mem://uploads"
	if cfg.Storage != nil && cfg.Storage.BucketURL != "" {
		bucketURL = cfg.Storage.BucketURL
	}

	store, closeBucket, err := storage.NewBlobStorage(ctx, bucketURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open blob storage: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return closeBucket()
		},
	})

	return store, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewAffiliateService,
			impl.NewAdvertService,
			impl.NewListingService,
			impl.NewSchoolService,
			impl.NewLearnerService,
			impl.NewAttendanceService,
			impl.NewDisciplineService,
			impl.NewActivityService,
			impl.NewMessageService,
			impl.NewNotificationService,
			impl.NewFilingService,
			impl.NewExportService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewAffiliateHandler,
			handler.NewAdvertHandler,
			handler.NewListingHandler,
			handler.NewSchoolHandler,
			handler.NewLearnerHandler,
			handler.NewAttendanceHandler,
			handler.NewDisciplineHandler,
			handler.NewActivityHandler,
			handler.NewMessageHandler,
			handler.NewNotificationHandler,
			handler.NewFilingHandler,
			handler.NewExportHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
