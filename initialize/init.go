package initialize

import (
	"fmt"
	"net/http"

	"assethook/app/controllers"
	"assethook/app/db"
	jwtutil "assethook/app/jwt"
	"assethook/app/middleware"
	"assethook/app/models"
	"assethook/app/repo"
	"assethook/app/services"
	"assethook/config"
	"assethook/global"
	"assethook/router"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	Cfg        *config.Config
	DB         *gorm.DB
	Router     http.Handler
	Reconciler *services.ReconcileService
	Devices    *services.DeviceService
	Settings   *services.SettingsService
	Users      *services.UserService
}

func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg

	InitLogger(cfg.Logging.Level, cfg.Logging.File)

	gdb, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	if err := gdb.AutoMigrate(&models.User{}, &models.Device{}, &models.Setting{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// optional probe-type cache
	if cfg.Redis.Addr != "" {
		global.Rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	// Repos and services
	userRepo := repo.NewUserRepository(gdb)
	deviceRepo := repo.NewDeviceRepository(gdb)
	settingsRepo := repo.NewSettingsRepository(gdb)
	if err := settingsRepo.EnsureDefaults(); err != nil {
		return nil, fmt.Errorf("seed settings: %w", err)
	}

	userSvc := services.NewUserService(userRepo)
	if err := userSvc.EnsureAdmin(cfg.Admin.Username, cfg.Admin.Password); err != nil {
		global.Logger.Warn().Err(err).Msg("admin seed failed")
	}
	deviceSvc := services.NewDeviceService(deviceRepo)
	settingsSvc := services.NewSettingsService(settingsRepo)
	var probeCache services.ProbeCache
	if global.Rdb != nil {
		probeCache = services.NewRedisProbeCache(global.Rdb)
	}
	reconciler := services.NewReconcileService(
		deviceRepo, settingsSvc, probeCache,
		cfg.Redis.ProbeTTL, cfg.Submit.HTTPTimeout, cfg.Submit.RetryDelay,
	)

	// Controllers
	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer, ExpMin: cfg.JWT.ExpMin}
	authCtrl := controllers.NewAuthController(userSvc, signer)
	webhookCtrl := controllers.NewWebhookController(reconciler)
	deviceCtrl := controllers.NewDeviceController(deviceSvc, reconciler)
	settingsCtrl := controllers.NewSettingsController(settingsSvc)
	mw := &middleware.Auth{Signer: signer}

	h := router.NewRouter(authCtrl, webhookCtrl, deviceCtrl, settingsCtrl, mw)
	h = middleware.Logging(h)
	h = middleware.RequestID(h)

	return &App{
		Cfg:        cfg,
		DB:         gdb,
		Router:     h,
		Reconciler: reconciler,
		Devices:    deviceSvc,
		Settings:   settingsSvc,
		Users:      userSvc,
	}, nil
}
