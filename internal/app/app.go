package app

import (
	"time"

	"github.com/reelrank/core/internal/config"
	http_auth "github.com/reelrank/core/internal/delivery/http/auth"
	http_init "github.com/reelrank/core/internal/delivery/http/init"
	http_auth_middleware "github.com/reelrank/core/internal/delivery/http/middleware/auth"
	http_ratelimit_middleware "github.com/reelrank/core/internal/delivery/http/middleware/ratelimit"
	http_movie "github.com/reelrank/core/internal/delivery/http/movie"
	http_room "github.com/reelrank/core/internal/delivery/http/room"
	http_solo "github.com/reelrank/core/internal/delivery/http/solo"
	http_swagger "github.com/reelrank/core/internal/delivery/http/swagger"
	ws_room "github.com/reelrank/core/internal/delivery/ws/room"
	infra_pg_init "github.com/reelrank/core/internal/infra/postgres/init"
	infra_postgres_room "github.com/reelrank/core/internal/infra/postgres/room"
	infra_postgres_solo "github.com/reelrank/core/internal/infra/postgres/solo"
	infra_postgres_user "github.com/reelrank/core/internal/infra/postgres/user"
	infra_redis_codeindex "github.com/reelrank/core/internal/infra/redis/codeindex"
	infra_redis_init "github.com/reelrank/core/internal/infra/redis/init"
	infra_redis_ratelimit "github.com/reelrank/core/internal/infra/redis/ratelimit"
	infra_tmdb "github.com/reelrank/core/internal/infra/tmdb"
	"github.com/reelrank/core/internal/service/auth"
	usecase_movie "github.com/reelrank/core/internal/usecase/movie"
	usecase_room "github.com/reelrank/core/internal/usecase/room"
	usecase_solo "github.com/reelrank/core/internal/usecase/solo"
)

func Go(cfg *config.Config) {
	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)

	roomRepository := infra_postgres_room.New(pgConn)
	soloRepository := infra_postgres_solo.New(pgConn)
	userRepository := infra_postgres_user.New(pgConn)
	codeIndex := infra_redis_codeindex.New(redisConn, "room_code")
	catalog := infra_tmdb.New(cfg.TMDB)

	hub := ws_room.NewHub()
	go hub.Run()

	roomUC := usecase_room.New(roomRepository, codeIndex, catalog, hub)
	soloUC := usecase_solo.New(soloRepository, catalog)
	movieUC := usecase_movie.New(catalog)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authService := auth.New(jwtManager, userRepository)
	authMiddleware := http_auth_middleware.New(authService).AuthRequired()

	rateLimiter := http_ratelimit_middleware.New(infra_redis_ratelimit.New(redisConn, "rate_limit"))
	searchLimit := rateLimiter.Limit(cfg.RateLimit.SearchPerMinute, time.Minute)
	joinLimit := rateLimiter.Limit(cfg.RateLimit.JoinPerMinute, time.Minute)

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_swagger.New())
	controllerPool.Add(http_auth.New(authService))
	controllerPool.Add(http_room.New(roomUC, authMiddleware, joinLimit))
	controllerPool.Add(http_solo.New(soloUC, authMiddleware))
	controllerPool.Add(http_movie.New(movieUC, authMiddleware, searchLimit))
	controllerPool.Add(ws_room.NewController(hub, roomUC, authMiddleware))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
