package main

import (
	"fmt"
	"log/slog"
	"os"

	"farmmarket/cmd"
	httpin "farmmarket/internal/adapters/in/http"
	"farmmarket/internal/adapters/out/postgres/conversationrepo"
	"farmmarket/internal/adapters/out/postgres/listingrepo"
	"farmmarket/internal/adapters/out/postgres/orderrepo"
	"farmmarket/internal/adapters/out/postgres/userrepo"
	"farmmarket/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateExpirePendingOrdersCommandHandler(),
		app.PendingOrderMaxAge(configs),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("cannot start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		TokenSecret:            goDotEnvVariable("TOKEN_SECRET"),
		TokenTTLHours:          goDotEnvVariable("TOKEN_TTL_HOURS"),
		PendingOrderMaxAgeDays: goDotEnvVariable("PENDING_ORDER_MAX_AGE_DAYS"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("cannot connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&listingrepo.CropDTO{}, &listingrepo.LivestockDTO{}, &listingrepo.LandDTO{},
		&orderrepo.OrderDTO{},
		&userrepo.UserDTO{},
		&conversationrepo.ConversationDTO{}, &conversationrepo.MessageDTO{},
	)
	if err != nil {
		log.Fatalf("cannot run migrations: %v", err)
	}

	return db
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(httpin.Handlers{
		RegisterUser:         app.CreateRegisterUserCommandHandler(),
		CreateListing:        app.CreateCreateListingCommandHandler(),
		UpdateListing:        app.CreateUpdateListingCommandHandler(),
		DeleteListing:        app.CreateDeleteListingCommandHandler(),
		CreateOrder:          app.CreateCreateOrderCommandHandler(),
		TransitionOrder:      app.CreateTransitionOrderCommandHandler(),
		StartConversation:    app.CreateStartConversationCommandHandler(),
		SendMessage:          app.CreateSendMessageCommandHandler(),
		MarkConversationRead: app.CreateMarkConversationReadCommandHandler(),

		SearchListings:     app.CreateSearchListingsQueryHandler(),
		GetListing:         app.CreateGetListingQueryHandler(),
		GetOrders:          app.CreateGetOrdersQueryHandler(),
		GetConversations:   app.CreateGetConversationsQueryHandler(),
		GetMessages:        app.CreateGetMessagesQueryHandler(),
		GetDashboard:       app.CreateGetDashboardSummaryQueryHandler(),
		GetAuthToken:       app.CreateGetAuthTokenQueryHandler(),
		GetPriceSuggestion: app.CreateGetPriceSuggestionQueryHandler(),
	}, app.TokenService())

	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
