package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hrmstack/hrms-backend-go/internal/config"
	appHTTP "github.com/hrmstack/hrms-backend-go/internal/handler/http"
	"github.com/hrmstack/hrms-backend-go/internal/pkg/clock"
	"github.com/hrmstack/hrms-backend-go/internal/pkg/database"
	"github.com/hrmstack/hrms-backend-go/internal/pkg/jwt"
	"github.com/hrmstack/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/hrmstack/hrms-backend-go/internal/service/attendance"
	authService "github.com/hrmstack/hrms-backend-go/internal/service/auth"
	employeeService "github.com/hrmstack/hrms-backend-go/internal/service/employee"
	leaveService "github.com/hrmstack/hrms-backend-go/internal/service/leave"
	payrollService "github.com/hrmstack/hrms-backend-go/internal/service/payroll"
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
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	clk := clock.System()
	txRunner := database.TxRunner(func(ctx context.Context, fn func(txCtx context.Context) error) error {
		return postgresql.WithTransaction(ctx, db, fn)
	})

	authSvc := authService.NewAuthService(userRepo, employeeRepo, jwtService, txRunner, clk)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, clk)
	leaveSvc := leaveService.NewLeaveService(leaveBalanceRepo, leaveRequestRepo, attendanceRepo, txRunner, clk)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, txRunner, clk)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		leaveHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
