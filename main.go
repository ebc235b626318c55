package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/gridpath/api"
	boardapi "github.com/beka-birhanu/gridpath/api/board"
	api_i "github.com/beka-birhanu/gridpath/api/i"
	"github.com/beka-birhanu/gridpath/api/identity"
	sessionapi "github.com/beka-birhanu/gridpath/api/session"
	"github.com/beka-birhanu/gridpath/config"
	logger "github.com/beka-birhanu/gridpath/infrastruture/log"
	"github.com/beka-birhanu/gridpath/infrastruture/render"
	"github.com/beka-birhanu/gridpath/infrastruture/repo"
	"github.com/beka-birhanu/gridpath/infrastruture/statestore"
	"github.com/beka-birhanu/gridpath/infrastruture/token"
	"github.com/beka-birhanu/gridpath/service"
	"github.com/beka-birhanu/gridpath/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient        *mongo.Client
	redisClient        *redis.Client
	boardRepo          i.BoardRepo
	stateStore         i.StateStore
	jwtTokenizer       i.Tokenizer
	renderer           i.Renderer
	gameSessionManager i.SessionManager
	boardController    api_i.Controller
	sessionController  api_i.Controller
	router             *api.Router
	appLogger          i.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initBoardRepo(ctx context.Context) {
	switch config.Envs.BoardRepo {
	case config.BackendMongo:
		initMongo(ctx)
		boardRepo = repo.NewBoardRepo(mongoClient, config.Envs.DBName, "boards")
	case config.BackendMemory:
		boardRepo = repo.NewMemoryBoardRepo()
	default:
		appLogger.Error(fmt.Sprintf("Unknown board repository backend %q", config.Envs.BoardRepo))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Board repository initialized (%s)", config.Envs.BoardRepo))
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initStateStore(ctx context.Context) {
	switch config.Envs.StateStore {
	case config.BackendRedis:
		initRedis(ctx)
		stateStore = statestore.NewRedisStateStore(redisClient, "", config.Envs.StateTTLSeconds)
	case config.BackendMemory:
		stateStore = statestore.NewMemoryStateStore()
	default:
		appLogger.Error(fmt.Sprintf("Unknown state store backend %q", config.Envs.StateStore))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("State store initialized (%s)", config.Envs.StateStore))
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.MustJWTSecret(), config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initRenderer() {
	renderer = render.NewPNG(0)
	appLogger.Info("PNG renderer initialized")
}

func initSessionManager() {
	sessionLogger, err := logger.New("SESSION-MANAGER", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating session manager logger: %v", err))
		os.Exit(1)
	}

	gameSessionManager, err = service.NewGameSessionManager(&service.Config{
		Boards:    boardRepo,
		States:    stateStore,
		Tokenizer: jwtTokenizer,
		Renderer:  renderer,
		Logger:    sessionLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating session manager: %v", err))
		os.Exit(1)
	}

	appLogger.Info("Session manager initialized")
}

func initControllers() {
	var err error
	boardController, err = boardapi.NewBoardController(gameSessionManager)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating board controller: %v", err))
		os.Exit(1)
	}

	sessionController, err = sessionapi.NewSessionController(gameSessionManager)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating session controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{boardController, sessionController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	initBoardRepo(ctx)
	defer func() {
		if mongoClient != nil {
			_ = mongoClient.Disconnect(context.Background())
		}
	}()

	initStateStore(ctx)
	defer func() {
		if redisClient != nil {
			_ = redisClient.Close()
		}
	}()

	initJWTTokenizer()
	initRenderer()
	initSessionManager()
	initControllers()
	initRouter(jwtTokenizer)

	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
