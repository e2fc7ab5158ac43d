package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/auth"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Almacen-api/pkg/jwt"
)

type memUserRepo struct {
	users  map[string]*entity.User
	nextID int64
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (f *memUserRepo) Create(_ context.Context, u *entity.User) error {
	if f.users[u.Login] != nil {
		return domain.ErrLoginAlreadyUsed
	}
	f.nextID++
	u.ID = f.nextID
	f.users[u.Login] = u
	return nil
}

func (f *memUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *memUserRepo) FindByLogin(_ context.Context, login string) (*entity.User, error) {
	return f.users[login], nil
}

const testSecret = "test-secret-key-for-unit-tests"

func buildAuthUC() (*auth.AuthUseCase, *memUserRepo) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "almacen-api-test",
	})
	return uc, repo
}

func TestRegister_CreaUsuarioYRetornaToken(t *testing.T) {
	uc, repo := buildAuthUC()

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Login:    "ana",
		Password: "super-secreta",
		Name:     "Ana Torres",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "Ana Torres", out.Name)
	assert.Equal(t, entity.RoleOperator, out.Role, "sin rol explícito se asigna OPERATOR")

	stored := repo.users["ana"]
	require.NotNil(t, stored)
	assert.True(t, stored.Active)
	assert.NotEqual(t, "super-secreta", stored.PasswordHash, "el password nunca se guarda plano")

	userID, name, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, userID)
	assert.Equal(t, "Ana Torres", name)
	assert.Equal(t, entity.RoleOperator, role)
}

func TestRegister_NombrePorDefectoEsElLogin(t *testing.T) {
	uc, _ := buildAuthUC()

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Login:    "ana",
		Password: "super-secreta",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana", out.Name)
}

func TestRegister_LoginDuplicado(t *testing.T) {
	uc, _ := buildAuthUC()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Login: "ana", Password: "super-secreta"})
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{Login: "ana", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrLoginAlreadyUsed)
}

func TestRegister_PasswordCorto(t *testing.T) {
	uc, repo := buildAuthUC()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Login: "ana", Password: "corta"})
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "at least 8 characters")
	assert.Empty(t, repo.users, "un password corto no debe crear usuario")
}

func TestRegister_RolInvalido(t *testing.T) {
	uc, _ := buildAuthUC()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Login: "ana", Password: "super-secreta", Role: "SUPERUSER",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLogin_CredencialesCorrectas(t *testing.T) {
	uc, _ := buildAuthUC()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Login: "ana", Password: "super-secreta", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Login: "ana", Password: "super-secreta"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleAdmin, out.Role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _ := buildAuthUC()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Login: "ana", Password: "super-secreta"})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Login: "ana", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := buildAuthUC()

	_, err := uc.Login(context.Background(), dto.LoginRequest{Login: "nadie", Password: "lo-que-sea"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	uc, repo := buildAuthUC()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Login: "ana", Password: "super-secreta"})
	require.NoError(t, err)
	repo.users["ana"].Active = false

	_, err = uc.Login(context.Background(), dto.LoginRequest{Login: "ana", Password: "super-secreta"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
