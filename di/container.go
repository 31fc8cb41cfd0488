package di

import (
	"context"
	"fmt"

	"schedule-server/api"
	"schedule-server/api/sheets"
	"schedule-server/config"
	"schedule-server/dao"
	memorydao "schedule-server/dao/memory"
	redisdao "schedule-server/dao/redis"
	"schedule-server/db"
	"schedule-server/server"
	"schedule-server/server/handlers"
	services "schedule-server/service"
	"schedule-server/util"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient              db.RedisClient
	ScheduleDAO              dao.ScheduleDAO
	SheetsAPI                sheets.GoogleSheetsAPI
	SyncService              *services.SyncService
	ScheduleRefresherService *services.ScheduleRefresherService
	ScheduleHandler          *handlers.ScheduleHandler
	MuxRouter                *mux.Router
	Router                   *server.Router
	ScheduleHttpServer       *server.ScheduleHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	logger := util.GetLogger().Sugar()
	logger.Infof("initializing container - env: %s", env)

	// Select the schedule storage backend.
	var redisClient db.RedisClient
	var scheduleDao dao.ScheduleDAO
	if config.AppConfig.StorageBackend == "redis" {
		ctx := context.Background()
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisDB,
		})

		redisClient = db.NewSimpleRedisClient(ctx, redisInternalClient)
		if err := redisClient.Ping(); err != nil {
			panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
		}
		scheduleDao = redisdao.NewRedisScheduleDAO(redisClient)
		logger.Info("Using redis schedule storage")
	} else {
		scheduleDao = memorydao.NewMemoryScheduleDAO()
		logger.Info("Using in-memory schedule storage")
	}

	// Initialize the sheets client - mock outside prod.
	var sheetsApiClient sheets.GoogleSheetsAPI
	if config.IsProduction() {
		logger.Info("Using prod sheets api")
		httpClient := api.NewHTTPClient(config.AppConfig.SheetsEndpointBase)
		sheetsApiClient = sheets.NewSheetsApiClient(httpClient)
	} else {
		sheetsApiClient = sheets.NewSheetsApiClientMock()
		logger.Info("Using mock sheets api")
	}

	// Initialize service layer.
	syncService := services.NewSyncService(scheduleDao, sheetsApiClient)

	// Seed the roster from a local file when configured, so the views
	// have data before the first sync.
	if seedPath := config.AppConfig.RosterSeedPath; seedPath != "" {
		records, err := util.ReadRosterRecordsFromJSON(seedPath)
		if err != nil {
			panic(fmt.Sprintf("Failed to read roster seed %s: %v", seedPath, err))
		}
		if _, err := syncService.SyncRecords(records); err != nil {
			panic(fmt.Sprintf("Failed to load roster seed %s: %v", seedPath, err))
		}
		logger.Infof("Seeded roster with %d records from %s", len(records), seedPath)
	}

	scheduleRefresherService := services.NewScheduleRefresherService(
		syncService, config.AppConfig.SheetsSpreadsheet, config.AppConfig.SheetsAPIKey)

	// Initialize handler and routing.
	scheduleHandler := handlers.NewScheduleHandler(scheduleDao, syncService)
	muxRouter := mux.NewRouter()
	router := server.NewRouter(scheduleHandler, muxRouter)
	scheduleHttpServer := server.NewScheduleHttpServer(router, muxRouter, config.AppConfig.AppPort)

	return &Container{
		RedisClient:              redisClient,
		ScheduleDAO:              scheduleDao,
		SheetsAPI:                sheetsApiClient,
		SyncService:              syncService,
		ScheduleRefresherService: scheduleRefresherService,
		ScheduleHandler:          scheduleHandler,
		MuxRouter:                muxRouter,
		Router:                   router,
		ScheduleHttpServer:       scheduleHttpServer,
	}
}
