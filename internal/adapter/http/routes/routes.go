package routes

import (
	"context"
	"fmt"
	"log"

	_ "beneficios_saude/docs" // This will be auto-generated
	"beneficios_saude/internal/adapter/http/handlers"
	"beneficios_saude/internal/adapter/http/middleware"
	repository2 "beneficios_saude/internal/adapter/persistence/repository"
	"beneficios_saude/internal/infrastructure/cache"
	"beneficios_saude/internal/infrastructure/config"
	"beneficios_saude/internal/infrastructure/database"
	"beneficios_saude/internal/infrastructure/messaging"
	"beneficios_saude/internal/infrastructure/payments"
	"beneficios_saude/internal/infrastructure/push"
	"beneficios_saude/internal/usecase"
	"beneficios_saude/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err = router.Run(fmt.Sprintf(":%d", cfg.HTTP.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	ddb := database.ConnectDynamoDB(cfg)

	appointmentRepo := repository2.NewAppointmentDynamoRepository(ddb)
	reimbursementRepo := repository2.NewReimbursementDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	establishmentRepo := repository2.NewEstablishmentDynamoRepository(ddb)
	specialtyRepo := repository2.NewSpecialtyDynamoRepository(ddb)
	referralRepo := repository2.NewReferralDynamoRepository(ddb)
	notificationRepo := repository2.NewNotificationDynamoRepository(ddb)

	rdb := cache.NewRedisClient(cfg.Redis)
	if rdb == nil {
		log.Fatalf("Redis not reachable at %s, sessions cannot be stored", cfg.Redis.Address())
	}
	sessionStore := cache.NewRedisSessionStore(rdb)

	chargeGateway, payoutGateway := newPaymentGateways(cfg)

	var publisher interfaces.INotificationPublisher
	if cfg.RabbitMQ.URL != "" {
		publisher = messaging.NewRabbitMQPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue)
	}

	var pushSender interfaces.IPushSender
	if cfg.Firebase.CredentialsFile != "" {
		sender, err := push.NewFirebaseSender(context.Background(), cfg.Firebase.CredentialsFile)
		if err != nil {
			log.Printf("Firebase push not configured: %v", err)
		} else {
			pushSender = sender
		}
	}

	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, publisher, pushSender)
	reconciliationUseCase := usecase.NewPaymentReconciliationUseCase(appointmentRepo, paymentRepo, chargeGateway, payoutGateway)
	appointmentUseCase := usecase.NewAppointmentUseCase(
		appointmentRepo,
		paymentRepo,
		establishmentRepo,
		specialtyRepo,
		reconciliationUseCase,
		notificationUseCase,
		cfg.Coparticipation.DefaultValue,
	)
	reimbursementUseCase := usecase.NewReimbursementUseCase(reimbursementRepo, reconciliationUseCase, notificationUseCase)
	referralUseCase := usecase.NewReferralUseCase(referralRepo, notificationUseCase)
	referenceUseCase := usecase.NewReferenceUseCase(establishmentRepo, specialtyRepo)
	sessionUseCase := usecase.NewSessionUseCase(sessionStore, cfg.Auth.JWTSecret, cfg.Session.TTL)

	sessionHandler := handlers.NewSessionHandler(sessionUseCase)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentUseCase)
	reimbursementHandler := handlers.NewReimbursementHandler(reimbursementUseCase)
	referralHandler := handlers.NewReferralHandler(referralUseCase)
	referenceHandler := handlers.NewReferenceHandler(referenceUseCase)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSessionRoutes(v1, sessionHandler)

	// Rotas autenticadas
	authenticated := v1.Group("")
	authenticated.Use(middleware.RequireSession(sessionUseCase))
	addReferenceRoutes(authenticated, referenceHandler)
	addAppointmentRoutes(authenticated, appointmentHandler)
	addReimbursementRoutes(authenticated, reimbursementHandler)
	addReferralRoutes(authenticated, referralHandler)
	addNotificationRoutes(authenticated, notificationHandler)
}

// newPaymentGateways picks the charge provider from CHARGE_PROVIDER. Payouts
// always go through the webhook. A gateway that cannot be built is left nil
// and the reconciliation use case reports it as not configured.
func newPaymentGateways(cfg config.Config) (interfaces.IChargeGateway, interfaces.IPayoutGateway) {
	var (
		charges interfaces.IChargeGateway
		payouts interfaces.IPayoutGateway
	)

	webhook, err := payments.NewWebhookGateway(cfg.Payment.WebhookURL, cfg.Payment.WebhookTimeout)
	if err != nil {
		log.Printf("Payment webhook not configured: %v", err)
	} else {
		payouts = webhook
		charges = webhook
	}

	if cfg.Charge.Provider == "mercadopago" {
		charges = nil
		mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken)
		if err != nil {
			log.Printf("Mercado Pago gateway not configured: %v", err)
		} else {
			charges = mpGateway
		}
	}

	log.Printf("[payment][routes] gateways charge_provider=%s charge_configured=%t payout_configured=%t", cfg.Charge.Provider, charges != nil, payouts != nil)
	return charges, payouts
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
