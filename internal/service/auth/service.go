package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/hrmstack/hrms-backend-go/internal/domain/auth"
	"github.com/hrmstack/hrms-backend-go/internal/domain/employee"
	"github.com/hrmstack/hrms-backend-go/internal/domain/user"
	"github.com/hrmstack/hrms-backend-go/internal/pkg/clock"
	"github.com/hrmstack/hrms-backend-go/internal/pkg/database"
	"github.com/hrmstack/hrms-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	employee.EmployeeRepository
	jwt.Service
	tx    database.TxRunner
	clock clock.Clock
}

func NewAuthService(userRepository user.UserRepository, employeeRepository employee.EmployeeRepository, jwtService jwt.Service, tx database.TxRunner, clk clock.Clock) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository:     userRepository,
		EmployeeRepository: employeeRepository,
		Service:            jwtService,
		tx:                 tx,
		clock:              clk,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// nextEmployeeCode issues sequential EMP001, EMP002, ... codes based on the
// last one handed out.
func (a *AuthServiceImpl) nextEmployeeCode(ctx context.Context) (string, error) {
	last, err := a.UserRepository.LastEmployeeCode(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get last employee code: %w", err)
	}
	if last == "" {
		return "EMP001", nil
	}

	n, err := strconv.Atoi(last[3:])
	if err != nil {
		return "", fmt.Errorf("malformed employee code %q: %w", last, err)
	}
	return fmt.Sprintf("EMP%03d", n+1), nil
}

// SignUp implements auth.AuthService.
func (a *AuthServiceImpl) SignUp(ctx context.Context, req auth.SignUpRequest) (auth.SignUpResponse, error) {
	role := user.Role(req.Role)
	if req.Role == "" {
		role = user.RoleEmployee
	}

	// Only the very first admin account can be self-registered.
	if role == user.RoleAdmin {
		exists, err := a.UserRepository.AdminExists(ctx)
		if err != nil {
			return auth.SignUpResponse{}, fmt.Errorf("failed to check admin existence: %w", err)
		}
		if exists {
			return auth.SignUpResponse{}, user.ErrAdminAlreadyExists
		}
	}

	if _, err := a.UserRepository.GetByEmail(ctx, req.Email); err == nil {
		return auth.SignUpResponse{}, user.ErrEmailExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return auth.SignUpResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	code, err := a.nextEmployeeCode(ctx)
	if err != nil {
		return auth.SignUpResponse{}, err
	}

	hash, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.SignUpResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	err = a.tx(ctx, func(txCtx context.Context) error {
		created, err := a.UserRepository.Create(txCtx, user.User{
			EmployeeCode: code,
			Email:        req.Email,
			PasswordHash: hash,
			Role:         role,
			IsVerified:   true,
		})
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		_, err = a.EmployeeRepository.Create(txCtx, employee.Employee{
			UserID:           created.ID,
			Code:             code,
			FirstName:        req.FirstName,
			LastName:         req.LastName,
			Email:            req.Email,
			Department:       req.Department,
			Designation:      req.Designation,
			DateOfJoining:    clock.Today(a.clock),
			EmploymentStatus: employee.StatusActive,
		})
		if err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.SignUpResponse{}, err
	}

	return auth.SignUpResponse{EmployeeCode: code}, nil
}

// SignIn implements auth.AuthService.
func (a *AuthServiceImpl) SignIn(ctx context.Context, req auth.SignInRequest) (auth.SignInResponse, error) {
	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.SignInResponse{}, auth.ErrInvalidCredentials
		}
		return auth.SignInResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.SignInResponse{}, auth.ErrInvalidCredentials
	}

	emp, err := a.EmployeeRepository.GetByUserID(ctx, userData.ID)
	if err != nil {
		return auth.SignInResponse{}, fmt.Errorf("failed to get employee profile: %w", err)
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(
		strconv.FormatInt(userData.ID, 10),
		userData.Email,
		strconv.FormatInt(emp.ID, 10),
		userData.Role,
	)
	if err != nil {
		return auth.SignInResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.SignInResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User: auth.UserPayload{
			ID:           userData.ID,
			EmployeeCode: userData.EmployeeCode,
			Email:        userData.Email,
			Role:         string(userData.Role),
			Name:         emp.FullName(),
		},
	}, nil
}

// Whoami implements auth.AuthService.
func (a *AuthServiceImpl) Whoami(ctx context.Context) (auth.UserPayload, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return auth.UserPayload{}, err
	}

	userData, err := a.UserRepository.GetByID(ctx, actor.UserID)
	if err != nil {
		return auth.UserPayload{}, fmt.Errorf("failed to get user: %w", err)
	}

	payload := auth.UserPayload{
		ID:           userData.ID,
		EmployeeCode: userData.EmployeeCode,
		Email:        userData.Email,
		Role:         string(userData.Role),
	}

	emp, err := a.EmployeeRepository.GetByUserID(ctx, userData.ID)
	if err == nil {
		payload.Name = emp.FullName()
	} else if !errors.Is(err, employee.ErrProfileNotFound) {
		return auth.UserPayload{}, fmt.Errorf("failed to get employee profile: %w", err)
	}

	return payload, nil
}
