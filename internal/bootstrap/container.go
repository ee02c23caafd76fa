package bootstrap

import (
	"context"
	"log"

	"storefront-be/internal/config"
	"storefront-be/internal/controller"
	"storefront-be/internal/pkg/logger"
	"storefront-be/internal/pkg/mailer"
	"storefront-be/internal/repository/unitofwork"
	"storefront-be/internal/service"

	pktNats "storefront-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	UserController     controller.IUserController
	AddressController  controller.IAddressController
	CatalogController  controller.ICatalogController
	CartController     controller.ICartController
	OrderController    controller.IOrderController
	WishlistController controller.IWishlistController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		sysLogger.Warn("bootstrap", "NATS publisher unavailable, events will be dropped", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		sysLogger.Warn("bootstrap", "Redis unavailable, product cache disabled", map[string]interface{}{
			"error": err.Error(),
		})
		rdb = nil
	}

	// 3. Services
	publisherService := service.NewPublisherService(cfg.App.OrderPlacedTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.OrderPlacedTopic,
		uowFactory,
		emailService,
		natsPub,
	)

	authService := service.NewAuthService(uowFactory, emailService, natsPub)
	userService := service.NewUserService(uowFactory)
	addressService := service.NewAddressService(uowFactory)
	catalogService := service.NewCatalogService(uowFactory, rdb)
	cartService := service.NewCartService(uowFactory)
	wishlistService := service.NewWishlistService(uowFactory)
	checkoutService := service.NewCheckoutService(uowFactory, cfg.Checkout, publisherService)
	orderService := service.NewOrderService(uowFactory, natsPub)

	// 4. Controllers
	return &Container{
		AuthController:     controller.NewAuthController(authService),
		UserController:     controller.NewUserController(userService),
		AddressController:  controller.NewAddressController(addressService),
		CatalogController:  controller.NewCatalogController(catalogService),
		CartController:     controller.NewCartController(cartService),
		OrderController:    controller.NewOrderController(orderService, checkoutService),
		WishlistController: controller.NewWishlistController(wishlistService),

		ConsumerService: consumerService,

		Logger: sysLogger,
	}
}
