package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/timetracker-pro/timetracker-backend-go/internal/config"
	appHTTP "github.com/timetracker-pro/timetracker-backend-go/internal/handler/http"
	"github.com/timetracker-pro/timetracker-backend-go/internal/pkg/database"
	"github.com/timetracker-pro/timetracker-backend-go/internal/pkg/jwt"
	"github.com/timetracker-pro/timetracker-backend-go/internal/pkg/pdf"
	"github.com/timetracker-pro/timetracker-backend-go/internal/pkg/qrcode"
	"github.com/timetracker-pro/timetracker-backend-go/internal/repository/postgresql"
	authService "github.com/timetracker-pro/timetracker-backend-go/internal/service/auth"
	companyService "github.com/timetracker-pro/timetracker-backend-go/internal/service/company"
	employeeService "github.com/timetracker-pro/timetracker-backend-go/internal/service/employee"
	reportService "github.com/timetracker-pro/timetracker-backend-go/internal/service/report"
	timeEntryService "github.com/timetracker-pro/timetracker-backend-go/internal/service/timeentry"
	userService "github.com/timetracker-pro/timetracker-backend-go/internal/service/user"
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

	ctx := context.Background()
	if err := postgresql.EnsureSchema(ctx, db); err != nil {
		log.Fatal("Failed to ensure database schema: ", err)
	}
	if cfg.App.SeedData {
		if err := postgresql.SeedDefaultData(ctx, db); err != nil {
			log.Fatal("Failed to seed default data: ", err)
		}
	}

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	timeEntryRepo := postgresql.NewTimeEntryRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)
	qrGenerator := qrcode.NewPNGGenerator()
	badgeRenderer := pdf.NewMarotoBadgeRenderer()

	authSvc := authService.NewAuthService(userRepo, companyRepo, jwtService)
	companySvc := companyService.NewCompanyService(companyRepo)
	userSvc := userService.NewUserService(userRepo, companyRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, qrGenerator, badgeRenderer)
	timeEntrySvc := timeEntryService.NewTimeEntryService(timeEntryRepo, employeeRepo)
	reportSvc := reportService.NewReportService(employeeRepo, timeEntryRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	companyHandler := appHTTP.NewCompanyHandler(companySvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	timeEntryHandler := appHTTP.NewTimeEntryHandler(timeEntrySvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:         cfg.App.Env,
			FrontendURL: cfg.App.FrontendURL,
		},
		jwtService,
		userRepo,
		authHandler,
		companyHandler,
		userHandler,
		employeeHandler,
		timeEntryHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
