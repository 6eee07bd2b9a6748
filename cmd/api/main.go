package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"stylehub/internal/adapter/api"
	"stylehub/internal/adapter/api/handler"
	apimiddleware "stylehub/internal/adapter/api/middleware"
	"stylehub/internal/adapter/api/router"
	"stylehub/internal/adapter/repository"
	domainrepo "stylehub/internal/domain/repository"
	"stylehub/internal/infrastructure/localstore"
	"stylehub/internal/infrastructure/ratelimit"
	"stylehub/internal/usecase"
	"stylehub/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption

	// Try to get service account from environment variable (for production)
	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		// Fallback to file path (for local development)
		serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./serviceAccountKey.json"
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}

		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	store, err := localstore.New(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to initialize local store: %v", err)
	}

	productRepo := repository.NewFirestoreProductRepository(firestoreClient)

	// Cart and wishlist mutations are mirrored to the backend only in
	// production; development keeps everything in the local store.
	var cartRepo domainrepo.CartRepository
	var wishlistRepo domainrepo.WishlistRepository
	if cfg.Environment == "production" {
		cartRepo = repository.NewFirestoreCartRepository(firestoreClient)
		wishlistRepo = repository.NewFirestoreWishlistRepository(firestoreClient)
	}

	catalogUseCase := usecase.NewCatalogUseCase(productRepo)
	cartUseCase := usecase.NewCartUseCase(store, cartRepo)
	wishlistUseCase := usecase.NewWishlistUseCase(store, wishlistRepo)
	filterUseCase := usecase.NewFilterUseCase()

	cartUseCase.RestoreFromRemote(ctx)
	wishlistUseCase.RestoreFromRemote(ctx)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	limiter := ratelimit.NewRateLimiter(cfg.RateLimit, cfg.RateLimit, time.Minute)
	rateLimit := apimiddleware.RateLimitMiddleware(limiter)

	handlers := router.Handlers{
		Health:   handler.NewHealthHandler(),
		Product:  handler.NewProductHandler(catalogUseCase),
		Cart:     handler.NewCartHandler(cartUseCase),
		Wishlist: handler.NewWishlistHandler(wishlistUseCase),
		Filter:   handler.NewFilterHandler(filterUseCase),
	}

	router.Setup(e, handlers, rateLimit)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
