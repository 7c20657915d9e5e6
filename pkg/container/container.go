package container

import (
	"context"
	"fmt"
	"time"

	"library-backend/internal/config"
	infraCache "library-backend/internal/infrastructure/cache"
	"library-backend/internal/infrastructure/database"
	"library-backend/pkg/cache"
	"library-backend/pkg/jwt"
	"library-backend/pkg/logger"

	authorHandler "library-backend/internal/domains/author/handler"
	authorRepo "library-backend/internal/domains/author/repository"
	authorService "library-backend/internal/domains/author/service"
	bookHandler "library-backend/internal/domains/book/handler"
	bookRepo "library-backend/internal/domains/book/repository"
	bookService "library-backend/internal/domains/book/service"
	commentHandler "library-backend/internal/domains/comment/handler"
	commentRepo "library-backend/internal/domains/comment/repository"
	commentService "library-backend/internal/domains/comment/service"
	identityHandler "library-backend/internal/domains/identity/handler"
	identityRepo "library-backend/internal/domains/identity/repository"
	identityService "library-backend/internal/domains/identity/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, in layer order: config, infrastructure,
// repositories, services, handlers.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	AuthorRepo   authorRepo.AuthorRepository
	BookRepo     bookRepo.BookRepository
	CommentRepo  commentRepo.CommentRepository
	IdentityRepo identityRepo.UserRepository

	AuthorService   authorService.ServiceInterface
	BookService     bookService.ServiceInterface
	CommentService  commentService.ServiceInterface
	IdentityService identityService.ServiceInterface

	AuthorHandler   *authorHandler.AuthorHandler
	BookHandler     *bookHandler.BookHandler
	CommentHandler  *commentHandler.CommentHandler
	IdentityHandler *identityHandler.IdentityHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	db := database.NewPostgresDB(&cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		// Redis going down only costs cache hits, not correctness.
		if err := rc.Connect(ctx); err != nil {
			logger.Warn("redis connection failed, running without cache hits", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.ExpiryMinute)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	// Default accounts must exist before the first login attempt.
	if err := c.IdentityService.Seed(ctx); err != nil {
		return nil, fmt.Errorf("failed to seed default accounts: %w", err)
	}

	logger.Info("container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.AuthorRepo = authorRepo.NewPostgresAuthorRepository(pool)
	c.BookRepo = bookRepo.NewPostgresBookRepository(pool, c.Cache)
	c.CommentRepo = commentRepo.NewPostgresCommentRepository(pool, c.Cache)
	c.IdentityRepo = identityRepo.NewPostgresUserRepository(pool)
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.BookService = bookService.NewBookService(c.BookRepo)
	c.CommentService = commentService.NewCommentService(c.CommentRepo)
	c.IdentityService = identityService.NewIdentityService(c.IdentityRepo, c.JWTManager, c.Config.Seed)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
	c.IdentityHandler = identityHandler.NewIdentityHandler(c.IdentityService)
}

// Cleanup releases infrastructure connections. Called on shutdown.
func (c *Container) Cleanup() {
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Error("failed to close redis", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
