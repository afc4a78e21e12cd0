package main

import (
	"fmt"
	"net/http"

	"github.com/luocityspa/staff-portal/internal/config"
	appHTTP "github.com/luocityspa/staff-portal/internal/handler/http"
	"github.com/luocityspa/staff-portal/internal/pkg/database"
	"github.com/luocityspa/staff-portal/internal/pkg/jwt"
	"github.com/luocityspa/staff-portal/internal/pkg/sse"
	"github.com/luocityspa/staff-portal/internal/repository/postgresql"
	authService "github.com/luocityspa/staff-portal/internal/service/auth"
	employeeService "github.com/luocityspa/staff-portal/internal/service/employee"
	requestService "github.com/luocityspa/staff-portal/internal/service/request"
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

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	leaveRepo := postgresql.NewLeaveRequestRepository(db)
	overtimeRepo := postgresql.NewOvertimeRequestRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	hub := sse.NewHub()

	authSvc := authService.NewAuthService(userRepo, employeeRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, authSvc, leaveRepo, overtimeRepo, hub)
	requestSvc := requestService.NewRequestService(employeeRepo, leaveRepo, overtimeRepo, hub, cfg.Approval.AllowRedecide)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc, employeeSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	requestHandler := appHTTP.NewRequestHandler(requestSvc)
	eventsHandler := appHTTP.NewEventsHandler(JWTService, hub)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		employeeHandler,
		requestHandler,
		eventsHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
