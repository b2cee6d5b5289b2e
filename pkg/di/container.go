package di

import (
	"context"

	"gorm.io/gorm"

	"github.com/Kimnjuki/faceless-sub001/application/serviceimpl"
	"github.com/Kimnjuki/faceless-sub001/domain/repositories"
	"github.com/Kimnjuki/faceless-sub001/domain/services"
	"github.com/Kimnjuki/faceless-sub001/infrastructure/newsapi"
	"github.com/Kimnjuki/faceless-sub001/infrastructure/postgres"
	"github.com/Kimnjuki/faceless-sub001/infrastructure/redis"
	"github.com/Kimnjuki/faceless-sub001/infrastructure/worker"
	"github.com/Kimnjuki/faceless-sub001/interfaces/api/handlers"
	"github.com/Kimnjuki/faceless-sub001/pkg/config"
	"github.com/Kimnjuki/faceless-sub001/pkg/logger"
	"github.com/Kimnjuki/faceless-sub001/pkg/scheduler"
)

const ingestJobID = "news-ingest"

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB             *gorm.DB
	RedisClient    *redis.RedisClient
	NewsAPIClient  *newsapi.Client
	EventScheduler scheduler.EventScheduler

	// Repositories
	ArticleRepository  repositories.ArticleRepository
	TagRepository      repositories.TagRepository
	CategoryRepository repositories.CategoryRepository
	ProfileRepository  repositories.ProfileRepository
	NewsItemRepository repositories.NewsItemRepository

	// Services
	ArticleService services.ArticleService
	IngestService  services.IngestService
	SitemapService services.SitemapService

	// Workers
	IngestWorker *worker.IngestWorker
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	if err := c.initRepositories(); err != nil {
		return err
	}

	if err := c.initServices(); err != nil {
		return err
	}

	if err := c.initWorkers(); err != nil {
		return err
	}

	if err := c.initScheduler(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Startup("config_loaded", "Configuration loaded", nil)
	return nil
}

func (c *Container) initInfrastructure() error {
	// Initialize Database
	dbConfig := postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	}

	db, err := postgres.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Startup("db_connected", "Database connected", nil)

	// Run migrations
	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Startup("db_migrated", "Database migrated", nil)

	// Initialize Redis; optional, the app runs without it
	redisConfig := redis.RedisConfig{
		Host:     c.Config.Redis.Host,
		Port:     c.Config.Redis.Port,
		Password: c.Config.Redis.Password,
		DB:       c.Config.Redis.DB,
	}
	c.RedisClient = redis.NewRedisClient(redisConfig)

	if err := c.RedisClient.Ping(context.Background()); err != nil {
		logger.StartupWarn("redis_connection_failed", "Redis connection failed", map[string]interface{}{"error": err.Error()})
	} else {
		logger.Startup("redis_connected", "Redis connected", nil)
	}

	// Initialize News API client
	c.NewsAPIClient = newsapi.NewClient(c.Config.NewsAPI.BaseURL, c.Config.NewsAPI.APIKey)
	if c.Config.NewsAPI.APIKey == "" {
		logger.StartupWarn("news_api_not_configured", "News API key not configured, ingestion runs will be skipped", nil)
	} else {
		logger.Startup("news_api_initialized", "News API client initialized", nil)
	}

	return nil
}

func (c *Container) initRepositories() error {
	c.ArticleRepository = postgres.NewArticleRepository(c.DB)
	c.TagRepository = postgres.NewTagRepository(c.DB)
	c.CategoryRepository = postgres.NewCategoryRepository(c.DB)
	c.ProfileRepository = postgres.NewProfileRepository(c.DB)
	c.NewsItemRepository = postgres.NewNewsItemRepository(c.DB)
	logger.Startup("repositories_initialized", "Repositories initialized", nil)
	return nil
}

func (c *Container) initServices() error {
	c.ArticleService = serviceimpl.NewArticleService(
		c.ArticleRepository,
		c.TagRepository,
		c.CategoryRepository,
		c.ProfileRepository,
	)
	c.IngestService = serviceimpl.NewIngestService(
		c.NewsAPIClient,
		c.NewsItemRepository,
		c.Config.NewsAPI,
	)
	c.SitemapService = serviceimpl.NewSitemapService(
		c.ArticleService,
		c.CategoryRepository,
	)
	logger.Startup("services_initialized", "Services initialized", nil)
	return nil
}

func (c *Container) initWorkers() error {
	c.IngestWorker = worker.NewIngestWorker(c.IngestService)
	c.IngestWorker.Start()
	return nil
}

func (c *Container) initScheduler() error {
	c.EventScheduler = scheduler.NewEventScheduler()
	c.EventScheduler.Start()

	if !c.Config.Ingest.Enabled {
		logger.Startup("ingest_disabled", "Scheduled ingestion disabled by configuration", nil)
		return nil
	}

	// Hourly by default; the worker serializes the actual runs.
	err := c.EventScheduler.AddJob(ingestJobID, c.Config.Ingest.CronExpr, func() {
		c.IngestWorker.Trigger()
	})
	if err != nil {
		logger.StartupWarn("ingest_schedule_failed", "Failed to schedule ingestion job", map[string]interface{}{"error": err.Error()})
		return nil
	}

	logger.Startup("ingest_scheduled", "Ingestion job scheduled", map[string]interface{}{"cron": c.Config.Ingest.CronExpr})
	return nil
}

func (c *Container) Cleanup() error {
	logger.Startup("cleanup_started", "Starting cleanup...", nil)

	// Stop scheduler first so no new runs get queued
	if c.EventScheduler != nil && c.EventScheduler.IsRunning() {
		c.EventScheduler.Stop()
		logger.Startup("scheduler_stopped", "Event scheduler stopped", nil)
	}

	// Stop ingest worker
	if c.IngestWorker != nil && c.IngestWorker.IsRunning() {
		c.IngestWorker.Stop()
	}

	// Close Redis connection
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.StartupWarn("redis_close_failed", "Failed to close Redis connection", map[string]interface{}{"error": err.Error()})
		} else {
			logger.Startup("redis_closed", "Redis connection closed", nil)
		}
	}

	// Close database connection
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.StartupWarn("db_close_failed", "Failed to close database connection", map[string]interface{}{"error": err.Error()})
			} else {
				logger.Startup("db_closed", "Database connection closed", nil)
			}
		}
	}

	logger.Startup("cleanup_completed", "Cleanup completed", nil)
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		ArticleService: c.ArticleService,
		IngestService:  c.IngestService,
		SitemapService: c.SitemapService,
	}
}

func (c *Container) GetHandlerRepositories() *handlers.Repositories {
	return &handlers.Repositories{
		NewsItemRepository: c.NewsItemRepository,
	}
}
