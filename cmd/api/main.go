package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/restopay/payroll-backend-go/internal/config"
	"github.com/restopay/payroll-backend-go/internal/domain/attendance"
	"github.com/restopay/payroll-backend-go/internal/export/excel"
	"github.com/restopay/payroll-backend-go/internal/export/pdf"
	appHTTP "github.com/restopay/payroll-backend-go/internal/handler/http"
	"github.com/restopay/payroll-backend-go/internal/pkg/database"
	"github.com/restopay/payroll-backend-go/internal/pkg/jwt"
	"github.com/restopay/payroll-backend-go/internal/pkg/pos"
	posRepo "github.com/restopay/payroll-backend-go/internal/repository/pos"
	"github.com/restopay/payroll-backend-go/internal/repository/postgresql"
	authService "github.com/restopay/payroll-backend-go/internal/service/auth"
	motivationService "github.com/restopay/payroll-backend-go/internal/service/motivation"
	reportService "github.com/restopay/payroll-backend-go/internal/service/report"
	"github.com/restopay/payroll-backend-go/internal/service/reward"
)

func engineRules(cfg config.EngineConfig) attendance.Rules {
	return attendance.Rules{
		WorkdayOpenHour:  cfg.WorkdayOpenHour,
		WorkdayCloseHour: cfg.WorkdayCloseHour,
		FullShift:        time.Duration(cfg.FullShiftHours) * time.Hour,
		HalfShift:        time.Duration(cfg.HalfShiftHours) * time.Hour,
		TaxiAfterHour:    cfg.TaxiAfterHour,
		TaxiMinDuration:  time.Duration(cfg.TaxiMinHours) * time.Hour,
		TaxiAmount:       cfg.TaxiAmount,
		RoundingStep:     time.Duration(cfg.RoundingStepMins) * time.Minute,
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logLevel := slog.LevelInfo
	if cfg.App.LogLevel == "debug" {
		logLevel = slog.LevelDebug
	}
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(log)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	motivationRepo := postgresql.NewMotivationRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)

	posClient := pos.NewClient(cfg.POS, log)
	attendanceSource := posRepo.NewAttendanceSource(posClient, departmentRepo)
	directory := posRepo.NewDirectory(posClient)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	authSvc := authService.NewAuthService(cfg.Operator, jwtService, log)
	motivationSvc := motivationService.NewMotivationService(motivationRepo, log)

	rules := engineRules(cfg.Engine)
	resolver := reward.NewResolver(motivationRepo, cfg.Engine.PerHourCapHours, log)
	reportSvc := reportService.NewReportService(
		attendanceSource,
		directory,
		directory,
		motivationRepo,
		resolver,
		rules,
		cfg.Engine.IngestBeforeHour,
		log,
	)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc, excel.NewGenerator(), pdf.NewGenerator())
	motivationHandler := appHTTP.NewMotivationHandler(motivationSvc, departmentRepo)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		reportHandler,
		motivationHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
