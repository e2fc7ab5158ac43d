package auth

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLen longitud mínima del password en el registro.
const MinPasswordLen = 8

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea el password con bcrypt, persiste y retorna
// token + datos como el login. Devuelve ErrLoginAlreadyUsed si el login existe.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.LoginResponse, error) {
	if in.Login == "" || in.Password == "" {
		return nil, domain.Validation("Login and password are required")
	}
	if len(in.Password) < MinPasswordLen {
		return nil, domain.Validation("Password must be at least 8 characters")
	}
	existing, err := uc.userRepo.FindByLogin(ctx, in.Login)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrLoginAlreadyUsed
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	name := in.Name
	if name == "" {
		name = in.Login
	}
	role := in.Role
	if role == "" {
		role = entity.RoleOperator
	}
	if role != entity.RoleAdmin && role != entity.RoleOperator {
		return nil, domain.Validation("Invalid role")
	}
	user := &entity.User{
		Name:         name,
		Login:        in.Login,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return uc.tokenResponse(user)
}

// Login verifica login/password y retorna token JWT + datos del usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByLogin(ctx, in.Login)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Active {
		return nil, domain.ErrForbidden
	}
	return uc.tokenResponse(user)
}

func (uc *AuthUseCase) tokenResponse(user *entity.User) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Name, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:  token,
		UserID: user.ID,
		Name:   user.Name,
		Role:   user.Role,
	}, nil
}
