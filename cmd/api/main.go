package main

import (
	"fmt"
	"net/http"

	"github.com/geoattend/attendance-backend-go/internal/config"
	appHTTP "github.com/geoattend/attendance-backend-go/internal/handler/http"
	"github.com/geoattend/attendance-backend-go/internal/pkg/cron"
	"github.com/geoattend/attendance-backend-go/internal/pkg/database"
	"github.com/geoattend/attendance-backend-go/internal/pkg/jwt"
	"github.com/geoattend/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/geoattend/attendance-backend-go/internal/service/attendance"
	serviceAuth "github.com/geoattend/attendance-backend-go/internal/service/auth"
	serviceLocation "github.com/geoattend/attendance-backend-go/internal/service/location"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, cfg.Database.QueryTimeout)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	locationRepo := postgresql.NewLocationRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authService := serviceAuth.NewAuthService(employeeRepo, JWTService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, locationRepo)
	locationSvc := serviceLocation.NewLocationService(locationRepo)

	authHandler := appHTTP.NewAuthHandler(authService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	locationHandler := appHTTP.NewLocationHandler(locationSvc)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		attendanceHandler,
		locationHandler,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
