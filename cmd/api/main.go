package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/depotworks/workforce-backend-go/internal/config"
	appHTTP "github.com/depotworks/workforce-backend-go/internal/handler/http"
	"github.com/depotworks/workforce-backend-go/internal/pkg/cron"
	"github.com/depotworks/workforce-backend-go/internal/pkg/database"
	"github.com/depotworks/workforce-backend-go/internal/pkg/holiday"
	"github.com/depotworks/workforce-backend-go/internal/pkg/jwt"
	"github.com/depotworks/workforce-backend-go/internal/pkg/oauth"
	"github.com/depotworks/workforce-backend-go/internal/repository/postgresql"
	attendanceService "github.com/depotworks/workforce-backend-go/internal/service/attendance"
	serviceAuth "github.com/depotworks/workforce-backend-go/internal/service/auth"
	catalogService "github.com/depotworks/workforce-backend-go/internal/service/catalog"
	dailylogService "github.com/depotworks/workforce-backend-go/internal/service/dailylog"
	leaveService "github.com/depotworks/workforce-backend-go/internal/service/leave"
	masterService "github.com/depotworks/workforce-backend-go/internal/service/master"
	"github.com/depotworks/workforce-backend-go/internal/service/reconcile"
	rosterService "github.com/depotworks/workforce-backend-go/internal/service/roster"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	workerRepo := postgresql.NewWorkerRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	rosterRepo := postgresql.NewRosterRepository(db)
	dailyLogRepo := postgresql.NewDailyLogRepository(db)
	teamRepo := postgresql.NewTeamRepository(db)
	categoryRepo := postgresql.NewCategoryRepository(db)
	productRepo := postgresql.NewProductRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	calendar := holiday.NewKoreanCalendar()
	location := cfg.Location()

	logService := dailylogService.NewLogService(db, dailyLogRepo)
	applier := reconcile.NewApplier(attendanceRepo, rosterRepo, logService)

	authSvc := serviceAuth.NewAuthService(db, workerRepo, JWTService, refreshTokenRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, workerRepo, applier, cfg.Attendance.AutoAdvanceHour, location)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, workerRepo, applier)
	rosterSvc := rosterService.NewRosterService(db, rosterRepo, attendanceRepo, leaveRequestRepo, calendar, location)
	masterSvc := masterService.NewMasterService(db, teamRepo, workerRepo)
	catalogSvc := catalogService.NewCatalogService(db, categoryRepo, productRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, JWTService, GoogleService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	rosterHandler := appHTTP.NewRosterHandler(rosterSvc)
	dailyLogHandler := appHTTP.NewDailyLogHandler(logService)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)
	catalogHandler := appHTTP.NewCatalogHandler(catalogSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			FrontendURL: cfg.App.FrontendURL,
			Env:         cfg.App.Env,
			LogLevel:    logLevel(cfg.App.LogLevel),
		},
		JWTService,
		authHandler,
		attendanceHandler,
		leaveHandler,
		rosterHandler,
		dailyLogHandler,
		masterHandler,
		catalogHandler,
	)

	scheduler := cron.NewScheduler()
	cron.RegisterAttendanceJobs(scheduler, attendanceSvc)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

func logLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
