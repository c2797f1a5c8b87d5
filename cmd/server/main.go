package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"gym-crm/internal/database"
	"gym-crm/internal/facade"
	"gym-crm/internal/models/config"
	"gym-crm/internal/repository/trainee"
	"gym-crm/internal/repository/trainer"
	"gym-crm/internal/repository/training"
	"gym-crm/internal/repository/trainingtype"
	"gym-crm/internal/repository/user"
	auth_service "gym-crm/internal/service/auth"
	trainee_service "gym-crm/internal/service/trainee"
	trainer_service "gym-crm/internal/service/trainer"
	training_service "gym-crm/internal/service/training"
	trainingtype_service "gym-crm/internal/service/trainingtype"
	user_service "gym-crm/internal/service/user"
	"gym-crm/internal/web"
	postgres "gym-crm/pkg"
	"gym-crm/pkg/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	// Загружаем конфигурацию
	if err := config.Load(); err != nil {
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}
	log.Printf("🚀 Запуск в окружении: %s", config.AppConfig.Environment)

	app := fx.New(
		fx.Provide(
			func() *config.Config { return config.AppConfig },
			func(cfg *config.Config) (*zap.Logger, error) { return logger.New(cfg.Environment) },
			postgres.NewPostgres,

			user.NewUserRepository,
			trainee.NewTraineeRepository,
			trainer.NewTrainerRepository,
			training.NewTrainingRepository,
			trainingtype.NewTrainingTypeRepository,

			user_service.NewUserService,
			auth_service.NewAuthService,
			trainingtype_service.NewTrainingTypeService,
			training_service.NewTrainingService,
			trainee_service.NewTraineeService,
			trainer_service.NewTrainerService,

			facade.New,
			web.NewHandler,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(prepareDatabase, runServer),
	)

	app.Run()
}

// prepareDatabase накатывает схему и сид каталога типов тренировок
func prepareDatabase(db *sqlx.DB, log *zap.Logger) error {
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := database.SeedTrainingTypes(db); err != nil {
		return fmt.Errorf("seed training types: %w", err)
	}
	log.Info("✅ Схема БД готова")
	return nil
}

func runServer(lc fx.Lifecycle, cfg *config.Config, handler *web.Handler, log *zap.Logger) {
	server := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("🌐 HTTP сервер запускается", zap.String("addr", server.Addr))
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("❌ Ошибка HTTP сервера", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("🛑 Останавливаем HTTP сервер")
			return server.Shutdown(ctx)
		},
	})
}
