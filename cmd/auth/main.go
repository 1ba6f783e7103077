package main

import (
	"github.com/reelrank/core/internal/config"
	http_auth "github.com/reelrank/core/internal/delivery/http/auth"
	http_init "github.com/reelrank/core/internal/delivery/http/init"
	infra_pg_init "github.com/reelrank/core/internal/infra/postgres/init"
	infra_postgres_user "github.com/reelrank/core/internal/infra/postgres/user"
	"github.com/reelrank/core/internal/service/auth"
)

// Standalone token verification service. Useful when the main app sits
// behind a gateway that only needs /auth/verify.
func main() {
	cfg := config.Load()
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)
	userRepository := infra_postgres_user.New(pgConn)
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authService := auth.New(jwtManager, userRepository)
	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_auth.New(authService))
	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
