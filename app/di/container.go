package di

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"auth-graph/app/config"
	"auth-graph/app/driver/postgres"
	gql "auth-graph/app/graphql"
	"auth-graph/app/port"
	"auth-graph/app/rest"
	"auth-graph/app/usecase"
	"auth-graph/app/utils/security"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB *postgres.DB

	// Security primitives
	Hasher port.PasswordHasher
	Tokens port.TokenCodec

	// Usecases
	AuthUsecase port.AuthUsecase
	UserUsecase port.UserUsecase

	// Transport
	GraphQLHandler *gql.Handler
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	// Initialize database connection
	var err error
	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize repositories
	userRepository := postgres.NewUserRepository(container.DB.Pool(), logger)

	// Initialize security primitives
	container.Hasher = security.NewBcryptHasher(cfg.BcryptCost)
	container.Tokens = security.NewJWTCodec(cfg.JWTSecret, cfg.TokenTTL)

	// Initialize usecases
	container.AuthUsecase = usecase.NewAuthUseCase(userRepository, container.Hasher, container.Tokens, logger)
	container.UserUsecase = usecase.NewUserUseCase(userRepository, logger)

	// Initialize GraphQL schema and handler
	resolver := gql.NewResolver(container.AuthUsecase, container.UserUsecase, logger)
	schema, err := gql.NewSchema(resolver)
	if err != nil {
		return nil, fmt.Errorf("failed to build graphql schema: %w", err)
	}
	container.GraphQLHandler = gql.NewHandler(schema, logger)

	logger.Info("container initialized")

	return container, nil
}

// CreateRouter builds the Echo router from the container's dependencies
func (c *Container) CreateRouter() *echo.Echo {
	return rest.NewRouter(rest.RouterConfig{
		Logger:     c.Logger,
		Schema:     c.GraphQLHandler,
		TokenCodec: c.Tokens,
		DB:         c.DB,
	})
}

// Close releases the container's resources
func (c *Container) Close() {
	if c.DB != nil {
		c.DB.Close()
	}
}
