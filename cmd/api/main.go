package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/bilgin-hr/puantaj-backend-go/internal/config"
	"github.com/bilgin-hr/puantaj-backend-go/internal/fixtures"
	appHTTP "github.com/bilgin-hr/puantaj-backend-go/internal/handler/http"
	"github.com/bilgin-hr/puantaj-backend-go/internal/pkg/jwt"
	"github.com/bilgin-hr/puantaj-backend-go/internal/repository/memory"
	attendanceService "github.com/bilgin-hr/puantaj-backend-go/internal/service/attendance"
	auditService "github.com/bilgin-hr/puantaj-backend-go/internal/service/audit"
	authService "github.com/bilgin-hr/puantaj-backend-go/internal/service/auth"
	dashboardService "github.com/bilgin-hr/puantaj-backend-go/internal/service/dashboard"
	employeeService "github.com/bilgin-hr/puantaj-backend-go/internal/service/employee"
	exportService "github.com/bilgin-hr/puantaj-backend-go/internal/service/export"
	locationService "github.com/bilgin-hr/puantaj-backend-go/internal/service/location"
	userService "github.com/bilgin-hr/puantaj-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	ledgerRepo := memory.NewLedgerRepository()
	employeeRepo := memory.NewEmployeeRepository()
	locationRepo := memory.NewLocationRepository()
	userRepo := memory.NewUserRepository()
	auditRepo := memory.NewAuditRepository()

	if cfg.Seed.DemoData {
		if err := fixtures.Seed(context.Background(), locationRepo, employeeRepo, userRepo); err != nil {
			log.Fatal("Failed to seed demo data: ", err)
		}
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	auditSvc := auditService.NewAuditService(auditRepo)
	authSvc := authService.NewAuthService(userRepo, JWTService, auditRepo)
	attendanceSvc := attendanceService.NewAttendanceService(ledgerRepo, employeeRepo, locationRepo, auditSvc)
	exportSvc := exportService.NewExportService(attendanceSvc, auditSvc)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, locationRepo, auditSvc)
	locationSvc := locationService.NewLocationService(locationRepo, employeeRepo, auditSvc)
	userSvc := userService.NewUserService(userRepo, locationRepo, auditSvc)
	dashboardSvc := dashboardService.NewDashboardService(ledgerRepo, employeeRepo, locationRepo)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(JWTService, authSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Export:     appHTTP.NewExportHandler(exportSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Location:   appHTTP.NewLocationHandler(locationSvc),
		User:       appHTTP.NewUserHandler(userSvc),
		Audit:      appHTTP.NewAuditHandler(auditSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Master:     appHTTP.NewMasterHandler(),
	}

	router := appHTTP.NewRouter(JWTService, cfg.App.FrontendURL, cfg.App.Env, handlers)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server running on port", cfg.App.Port)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server failed: ", err)
	}
}
