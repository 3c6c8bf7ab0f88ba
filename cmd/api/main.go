package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"servicehub/internal/config"
	"servicehub/internal/database"
	"servicehub/internal/middleware"
	"servicehub/internal/modules/auth"
	"servicehub/internal/modules/availability"
	"servicehub/internal/modules/booking"
	"servicehub/internal/modules/catalog"
	"servicehub/internal/modules/payment"
	"servicehub/internal/modules/recommend"
	"servicehub/internal/modules/review"
	jwtsvc "servicehub/internal/pkg/jwt"
	"servicehub/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	providerRepo := repository.NewProviderRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	paystackRepo := repository.NewPaystackPaymentRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, customerRepo, providerRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(categoryRepo, serviceRepo, providerRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	availabilityService := availability.NewService(availabilityRepo, providerRepo, bookingRepo)
	availabilityHandler := availability.NewHandler(availabilityService)

	bookingService := booking.NewService(bookingRepo, serviceRepo, customerRepo, providerRepo)
	bookingHandler := booking.NewHandler(bookingService)

	recommendService := recommend.NewService(serviceRepo, availabilityService, cfg.Scoring)
	recommendHandler := recommend.NewHandler(recommendService)

	reviewService := review.NewService(reviewRepo, bookingRepo, customerRepo, providerRepo)
	reviewHandler := review.NewHandler(reviewService)

	paymentService := payment.NewService(cfg.Paystack, nil, paystackRepo, bookingRepo, bookingRepo, serviceRepo, customerRepo)
	paymentHandler := payment.NewHandler(paymentService)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ErrorLogger(), middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)
		availabilityHandler.RegisterPublicRoutes(v1)
		reviewHandler.RegisterPublicRoutes(v1)
		paymentHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			bookingHandler.RegisterRoutes(protected)
			recommendHandler.RegisterRoutes(protected)

			provider := protected.Group("/")
			provider.Use(middleware.RequireRole("provider"))
			{
				catalogHandler.RegisterProviderRoutes(provider)
				availabilityHandler.RegisterProviderRoutes(provider)
			}

			customer := protected.Group("/")
			customer.Use(middleware.RequireRole("customer"))
			{
				reviewHandler.RegisterCustomerRoutes(customer)
				paymentHandler.RegisterCustomerRoutes(customer)
			}
		}
	}

	log.Printf("listening on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
