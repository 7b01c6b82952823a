package services

import (
	"context"

	"go.uber.org/zap"

	"tradehub/internal/models/db_models"
	"tradehub/internal/models/request_models"
	"tradehub/internal/models/response_models"
	"tradehub/internal/repositories"
	"tradehub/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*db_models.Account, error)
	GetAccountById(ctx context.Context, id string) (*db_models.Account, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	logger      *zap.Logger
}

func NewAccountService(accountRepo repositories.AccountRepository, logger *zap.Logger) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	a.logger.Info("account logged in", zap.String("account_id", account.ID.String()))

	return &response_models.AccountLoginResponse{Token: token, Role: account.Role}, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*db_models.Account, error) {
	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	role := request.Role
	if role == "" {
		role = db_models.RoleHomeowner
	}

	account := &db_models.Account{
		Name:         request.DisplayName,
		Email:        request.Email,
		Phone:        request.Phone,
		PasswordHash: hashedPassword,
		Role:         role,
	}
	if err := a.accountRepo.Insert(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}

	a.logger.Info("account created",
		zap.String("account_id", account.ID.String()),
		zap.String("role", account.Role))

	return account, nil
}

func (a *AccountService) GetAccountById(ctx context.Context, id string) (*db_models.Account, error) {
	account, err := a.accountRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return account, nil
}
