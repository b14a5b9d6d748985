package main

import (
	"context"
	"log/slog"
	"os"

	"notaspro/config"
	"notaspro/internal/delivery"
	"notaspro/internal/delivery/http"
	"notaspro/internal/delivery/http/middleware"
	"notaspro/internal/delivery/http/router/handler"
	"notaspro/internal/infra/auth"
	logs "notaspro/internal/infra/log"
	"notaspro/internal/infra/persistence/postgres"
	"notaspro/internal/usecase"
	"notaspro/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			prepareSchema,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewRoleRepository,
			postgres.NewStudentRepository,
			postgres.NewTeacherRepository,
			postgres.NewGuardianRepository,
			postgres.NewSubjectRepository,
			postgres.NewGradeRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewStudentService,
			impl.NewTeacherService,
			impl.NewGuardianService,
			impl.NewSubjectService,
			impl.NewGradeService,
			impl.NewRoleSeeder,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewStudentHandler,
			handler.NewTeacherHandler,
			handler.NewGuardianHandler,
			handler.NewSubjectHandler,
			handler.NewGradeHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// prepareSchema migrates the schema and reconciles the fixed role set
// before the server starts accepting traffic.
func prepareSchema(ctx context.Context, db *gorm.DB, seeder usecase.RoleSeeder, logger *slog.Logger) error {
	if err := postgres.Migrate(db); err != nil {
		return err
	}
	if err := seeder.EnsureDefaultRoles(ctx); err != nil {
		return err
	}
	logger.Info("Schema migrated and roles seeded")

	return nil
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
