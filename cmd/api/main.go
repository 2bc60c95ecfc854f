package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gjd78/planilla-backend/internal/config"
	appHTTP "github.com/gjd78/planilla-backend/internal/handler/http"
	"github.com/gjd78/planilla-backend/internal/pkg/database"
	"github.com/gjd78/planilla-backend/internal/pkg/jwt"
	"github.com/gjd78/planilla-backend/internal/pkg/storage"
	"github.com/gjd78/planilla-backend/internal/repository/postgresql"
	attendanceService "github.com/gjd78/planilla-backend/internal/service/attendance"
	authService "github.com/gjd78/planilla-backend/internal/service/auth"
	dashboardService "github.com/gjd78/planilla-backend/internal/service/dashboard"
	employeeService "github.com/gjd78/planilla-backend/internal/service/employee"
	reportService "github.com/gjd78/planilla-backend/internal/service/report"
	userService "github.com/gjd78/planilla-backend/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	maintenanceRepo := postgresql.NewMaintenanceRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}

	auth := authService.NewAuthService(db, userRepo, jwtService)
	users := userService.NewUserService(db, userRepo)
	employees := employeeService.NewEmployeeService(db, employeeRepo, fileStorage, cfg.Rates, cfg.Attendance.Location)
	attendance := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo, cfg.Rates, cfg.Attendance.Location)
	reports := reportService.NewReportService(reportRepo, cfg.Rates)
	dashboards := dashboardService.NewDashboardService(dashboardRepo, reports, cfg.Attendance.Location)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(auth),
		User:       appHTTP.NewUserHandler(users),
		Employee:   appHTTP.NewEmployeeHandler(employees),
		Attendance: appHTTP.NewAttendanceHandler(attendance),
		Report:     appHTTP.NewReportHandler(reports),
		Dashboard:  appHTTP.NewDashboardHandler(dashboards),
		Dev:        appHTTP.NewDevHandler(maintenanceRepo),
	}

	router := appHTTP.NewRouter(cfg, jwtService, handlers)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server starting on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server failed:", err)
	}
}
