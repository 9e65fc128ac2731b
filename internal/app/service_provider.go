package app

import (
	authAPI "jackpot_backend/internal/api/auth"
	gameAPI "jackpot_backend/internal/api/game"
	userAPI "jackpot_backend/internal/api/user"
	"jackpot_backend/internal/config"
	"jackpot_backend/internal/config/env"
	"jackpot_backend/internal/middleware"
	"jackpot_backend/internal/repository"
	"jackpot_backend/internal/repository/game_state_repo"
	"jackpot_backend/internal/repository/history_repo"
	"jackpot_backend/internal/repository/session_repo"
	"jackpot_backend/internal/repository/user_repo"
	"jackpot_backend/internal/service"
	"jackpot_backend/internal/service/auth"
	"jackpot_backend/internal/service/game"
	"jackpot_backend/internal/service/user"
	"context"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

const jackpotUpdateBuffer = 8

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Auth bits
	tokenCfg    config.TokenConfig
	sessionRepo repository.SessionRepository
	authServ    service.AuthService
	authHand    *authAPI.Handler

	// User bits
	userRepo repository.UserRepository
	userServ service.UserService
	userHand *userAPI.Handler

	// Game bits
	gameCfg     config.GameConfig
	stateRepo   repository.GameStateRepository
	historyRepo repository.HistoryRepository
	resolver    *game.Resolver
	broadcaster *game.Broadcaster
	gameServ    service.GameService
	gameHand    *gameAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) TokenCfg() config.TokenConfig {
	if sp.tokenCfg == nil {
		cfg, err := env.NewTokenConfig()
		if err != nil {
			panic("failed to get token config: " + err.Error())
		}
		sp.tokenCfg = cfg
	}
	return sp.tokenCfg
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) SessionRepo() repository.SessionRepository {
	if sp.sessionRepo == nil {
		sp.sessionRepo = session_repo.NewSessionRepository()
	}
	return sp.sessionRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) GameStateRepo(ctx context.Context) repository.GameStateRepository {
	if sp.stateRepo == nil {
		sp.stateRepo = game_state_repo.NewGameStateRepository(sp.DBClient(ctx))
	}
	return sp.stateRepo
}

func (sp *ServiceProvider) HistoryRepo(ctx context.Context) repository.HistoryRepository {
	if sp.historyRepo == nil {
		sp.historyRepo = history_repo.NewHistoryRepository(sp.DBClient(ctx))
	}
	return sp.historyRepo
}

func (sp *ServiceProvider) Resolver() *game.Resolver {
	if sp.resolver == nil {
		sp.resolver = game.NewResolver(sp.GameCfg(), nil)
	}
	return sp.resolver
}

func (sp *ServiceProvider) Broadcaster() *game.Broadcaster {
	if sp.broadcaster == nil {
		sp.broadcaster = game.NewBroadcaster(jackpotUpdateBuffer)
	}
	return sp.broadcaster
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(
			sp.TXManager(ctx),
			sp.UserRepo(ctx),
			sp.SessionRepo(),
			sp.TokenCfg(),
			sp.GameCfg(),
		)
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv: sp.AuthService(ctx),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) UserService(ctx context.Context) service.UserService {
	if sp.userServ == nil {
		sp.userServ = user.NewUserService(sp.TXManager(ctx), sp.UserRepo(ctx))
	}
	return sp.userServ
}

func (sp *ServiceProvider) UserHandler(ctx context.Context) *userAPI.Handler {
	if sp.userHand == nil {
		sp.userHand = userAPI.NewHandler(userAPI.HandlerDeps{
			Serv: sp.UserService(ctx),
		})
	}
	return sp.userHand
}

func (sp *ServiceProvider) GameService(ctx context.Context) service.GameService {
	if sp.gameServ == nil {
		sp.gameServ = game.NewGameService(
			sp.GameCfg(),
			sp.UserRepo(ctx),
			sp.GameStateRepo(ctx),
			sp.HistoryRepo(ctx),
			sp.TXManager(ctx),
			sp.Resolver(),
			sp.Broadcaster(),
		)
	}
	return sp.gameServ
}

func (sp *ServiceProvider) GameHandler(ctx context.Context) *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{
			Serv:        sp.GameService(ctx),
			Broadcaster: sp.Broadcaster(),
		})
	}
	return sp.gameHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		authGate := middleware.Auth(sp.SessionRepo(), sp.TokenCfg())

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/login", authHandler.Login)
			rr.Group(func(protected chi.Router) {
				protected.Use(authGate)
				protected.Post("/logout", authHandler.Logout)
			})
		})

		// User endpoints
		userHandler := sp.UserHandler(ctx)
		r.Route("/user", func(rr chi.Router) {
			rr.Use(authGate)
			rr.Get("/me", userHandler.Me)
			rr.Post("/recharge", userHandler.Recharge)
		})

		// Game endpoints
		gameHandler := sp.GameHandler(ctx)
		r.Route("/game", func(rr chi.Router) {
			rr.Get("/status", gameHandler.Status)
			rr.Get("/history", gameHandler.History)
			rr.Get("/live", gameHandler.Live)
			rr.Group(func(protected chi.Router) {
				protected.Use(authGate)
				protected.Post("/play", gameHandler.Play)
			})
		})

		sp.router = r
	}

	return sp.router
}
