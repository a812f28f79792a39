package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"gorm.io/gorm"

	"cardstudio/internal/ai"
	"cardstudio/internal/canvas"
	"cardstudio/internal/config"
	"cardstudio/internal/database"
	"cardstudio/internal/email"
	apphttp "cardstudio/internal/http"
	"cardstudio/internal/http/handlers"
	"cardstudio/internal/repository"
	"cardstudio/internal/scheduler"
	"cardstudio/internal/service"
)

type App struct {
	cfg       config.Config
	logger    *slog.Logger
	db        *gorm.DB
	httpSrv   *http.Server
	scheduler *scheduler.Scheduler
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg.App.Environment)

	db, err := database.OpenPostgres(cfg.DB)
	if err != nil {
		return nil, err
	}

	if cfg.DB.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			_ = database.Close(db)
			return nil, err
		}
		logger.Info("database schema migrated")
	}

	peopleRepo := repository.NewPeopleRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	cardRepo := repository.NewCardRepository(db)

	pipeline := ai.NewPipeline(ai.Config{
		GeminiAPIKey:        cfg.AI.GeminiAPIKey,
		GeminiModel:         cfg.AI.GeminiModel,
		GeminiBaseURL:       cfg.AI.GeminiBaseURL,
		PollinationsBaseURL: cfg.AI.PollinationsBaseURL,
		EnhanceTimeout:      cfg.AI.EnhanceTimeout,
	}, logger)

	sender, err := email.NewClient(cfg.Email.ResendAPIKey, cfg.Email.From, cfg.Email.TestOverride, logger)
	if err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("build email client: %w", err)
	}

	celebrationSvc := service.NewCelebrationService(peopleRepo, pipeline, sender, cfg.Email.NotificationEmail, logger)
	renderSvc := service.NewRenderService(templateRepo, canvas.NewLoader(), logger)

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		Logger:          logger,
		HealthHandler:   handlers.NewHealthHandler(),
		PeopleHandler:   handlers.NewPeopleHandler(peopleRepo),
		TemplateHandler: handlers.NewTemplateHandler(templateRepo, renderSvc, cfg.Upload.MaxImageBytes),
		CardHandler:     handlers.NewCardHandler(cardRepo),
		GenerateHandler: handlers.NewGenerateHandler(pipeline),
		CronHandler:     handlers.NewCronHandler(celebrationSvc),
	})

	httpSrv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		sched, err = scheduler.New(celebrationSvc, cfg.Scheduler.PollInterval, cfg.Scheduler.RunAt, logger)
		if err != nil {
			_ = database.Close(db)
			return nil, err
		}
	}

	return &App{
		cfg:       cfg,
		logger:    logger,
		db:        db,
		httpSrv:   httpSrv,
		scheduler: sched,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if a.scheduler != nil {
		go a.scheduler.Run(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http server starting", slog.String("addr", a.httpSrv.Addr))
		if err := a.httpSrv.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		return a.shutdown(context.Background())
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return a.shutdown(context.Background())
		}
		_ = a.shutdown(context.Background())
		return err
	}
}

func (a *App) shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	if err := database.Close(a.db); err != nil {
		return fmt.Errorf("close db: %w", err)
	}

	return nil
}
