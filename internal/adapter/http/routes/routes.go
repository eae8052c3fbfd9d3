package routes

import (
	"log"
	"os"
	"strconv"

	_ "quoteforge/docs" // This will be auto-generated
	"quoteforge/internal/adapter/http/handlers"
	repository2 "quoteforge/internal/adapter/persistence/repository"
	"quoteforge/internal/infrastructure/database"
	"quoteforge/internal/infrastructure/orders"
	"quoteforge/internal/infrastructure/payments"
	"quoteforge/internal/usecase"
	"quoteforge/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	versionRepo := repository2.NewQuoteVersionDynamoRepository(ddb)
	negotiationRepo := repository2.NewNegotiationDynamoRepository(ddb)
	escrowRepo := repository2.NewEscrowDynamoRepository(ddb)
	templateRepo := repository2.NewQuoteTemplateDynamoRepository(ddb)

	var escrowGateway interfaces.IEscrowGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		escrowGateway = mpGateway
	}

	var orderService interfaces.IOrderService
	orderClient, err := orders.NewOrderHTTPClient(os.Getenv("ORDER_SERVICE_URL"))
	if err != nil {
		log.Printf("Order service client not configured: %v", err)
	} else {
		orderService = orderClient
	}

	versionUseCase := usecase.NewVersionUseCase(versionRepo, quoteRepo)
	escrowUseCase := usecase.NewEscrowUseCase(escrowRepo, quoteRepo, escrowGateway)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, versionUseCase, escrowUseCase, orderService, templateRepo)
	negotiationUseCase := usecase.NewNegotiationUseCase(negotiationRepo, quoteRepo, quoteUseCase, versionUseCase)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	versionHandler := handlers.NewVersionHandler(versionUseCase)
	negotiationHandler := handlers.NewNegotiationHandler(negotiationUseCase)
	escrowHandler := handlers.NewEscrowHandler(escrowUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler, versionHandler, negotiationHandler, escrowHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
