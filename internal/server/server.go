// Package server contains the HTTP handlers for the content API.
package server

import (
	"context"
	"io"
	"strings"
	"time"

	"studio/internal/config"
	"studio/internal/middleware"
	"studio/internal/models"
	"studio/internal/repository"
	"studio/internal/seed"
	"studio/internal/storage"
	"studio/internal/wordpress"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	store          storage.SlotStore
	redis          *redis.Client
	promMiddleware *fiberprometheus.FiberPrometheus
	postRepo       repository.PostRepository
	projectRepo    repository.ProjectRepository
	aboutRepo      repository.AboutRepository
	userRepo       repository.UserRepository
	remote         *wordpress.Client
}

// NewServer creates a server instance, establishing the storage backend
// named in the configuration.
func NewServer(cfg *config.Config) (*Server, error) {
	store, err := storage.NewFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	// The redis-backed rate limiter shares the slot store's connection.
	var redisClient *redis.Client
	if rs, ok := store.(*storage.RedisStore); ok {
		redisClient = rs.Client()
	}

	return NewServerWithDeps(cfg, store, redisClient), nil
}

// NewServerWithDeps creates a Server over an already-initialized slot
// store. Use this in tests or when a bootstrap layer establishes storage.
func NewServerWithDeps(cfg *config.Config, store storage.SlotStore, redisClient *redis.Client) *Server {
	server := &Server{
		config:         cfg,
		store:          store,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics("studio-api"),
		postRepo:       repository.NewPostRepository(store, seed.Posts(), cfg.SiteAuthor),
		projectRepo:    repository.NewProjectRepository(store, seed.Projects(), cfg.SiteAuthor),
		aboutRepo:      repository.NewAboutRepository(store, seed.About()),
		userRepo:       repository.NewUserRepository(store),
	}

	if cfg.WordPressURL != "" {
		server.remote = wordpress.NewClient(cfg.WordPressURL)
	}

	return server
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate request ID and user ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS must run before middlewares that can short-circuit (e.g. limiter)
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they are handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Studio Backend Metrics Dashboard",
	}))

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/signup", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "signup"), s.Signup)
	auth.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)

	// Public content routes. Reads resolve a bearer token when one is
	// presented so the signed-in admin sees drafts; visitors only ever
	// see published content.
	posts := api.Group("/posts", s.AuthOptional())
	posts.Get("/", s.GetPosts)
	posts.Get("/slug/:slug", s.GetPostBySlug)
	posts.Get("/:id", s.GetPost)

	projects := api.Group("/projects", s.AuthOptional())
	projects.Get("/", s.GetProjects)
	projects.Get("/slug/:slug", s.GetProjectBySlug)
	projects.Get("/:id", s.GetProject)

	api.Get("/about", s.GetAbout)
	api.Get("/icons", s.GetIcons)

	// Remote WordPress content, mounted only when an endpoint is configured
	if s.remote != nil {
		remote := api.Group("/remote")
		remote.Get("/posts", s.GetRemotePosts)
		remote.Get("/posts/:slug", s.GetRemotePost)
		remote.Get("/projects", s.GetRemoteProjects)
		remote.Get("/projects/:slug", s.GetRemoteProject)
		remote.Get("/categories", s.GetRemoteCategories)
		remote.Get("/pages/:slug", s.GetRemotePage)
	}

	// Protected admin routes
	protected := api.Group("", s.AuthRequired())
	protected.Get("/auth/me", s.GetMe)
	protected.Post("/auth/change-password", s.ChangePassword)

	protected.Post("/posts", s.CreatePost)
	protected.Post("/posts/import", s.ImportPost)
	protected.Put("/posts/:id", s.UpdatePost)
	protected.Delete("/posts/:id", s.DeletePost)

	protected.Post("/projects", s.CreateProject)
	protected.Put("/projects/:id", s.UpdateProject)
	protected.Delete("/projects/:id", s.DeleteProject)

	protected.Put("/about", s.UpdateAbout)
}

// Shutdown releases server-held resources.
func (s *Server) Shutdown(ctx context.Context) error {
	if closer, ok := s.store.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests. The storage backend
// is exercised with a cheap read so a dead store flips readiness.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	storageStatus := "healthy"
	if _, _, err := s.store.Read(c.Context(), storage.AboutSlot); err != nil {
		storageStatus = "unhealthy"
	}

	status := fiber.StatusOK
	overall := "healthy"
	if storageStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
		overall = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status":  overall,
		"backend": s.config.StorageBackend,
		"checks": fiber.Map{
			"storage": storageStatus,
		},
		"time": time.Now(),
	})
}

// resolveBearer verifies the request's bearer token and returns its
// subject. A non-nil error is ready to serve as a 401 body.
func (s *Server) resolveBearer(c *fiber.Ctx) (string, *models.AppError) {
	authHeader := c.Get("Authorization")
	tokenString := ""
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			tokenString = parts[1]
		}
	}

	if tokenString == "" {
		return "", models.NewUnauthorizedError("Authorization required")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(s.config.JWTSecret), nil
	})

	if err != nil || !token.Valid {
		return "", models.NewUnauthorizedError("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", models.NewUnauthorizedError("Invalid token claims")
	}

	if issuer, issuerOk := claims["iss"].(string); !issuerOk || issuer != tokenIssuer {
		return "", models.NewUnauthorizedError("Invalid token issuer")
	}
	if audience, audienceOk := claims["aud"].(string); !audienceOk || audience != tokenAudience {
		return "", models.NewUnauthorizedError("Invalid token audience")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", models.NewUnauthorizedError("Invalid subject claim")
	}

	return sub, nil
}

// AuthRequired returns the authentication middleware
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sub, authErr := s.resolveBearer(c)
		if authErr != nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized, authErr)
		}
		c.Locals("userID", sub)
		return c.Next()
	}
}

// AuthOptional resolves a bearer token when one is presented but never
// rejects the request. Content read handlers use the resolved identity
// to include drafts for the signed-in admin.
func (s *Server) AuthOptional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if sub, authErr := s.resolveBearer(c); authErr == nil {
			c.Locals("userID", sub)
		}
		return c.Next()
	}
}
