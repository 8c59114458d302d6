package service

import (
	"context"
	"testing"

	"github.com/Hjanner/2MS/internal/config"
	"github.com/Hjanner/2MS/internal/dto"
	"github.com/Hjanner/2MS/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type stubUsuarioRepo struct {
	usuarios map[string]*model.Usuario
}

func (s *stubUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	u, ok := s.usuarios[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (s *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	s.usuarios[u.Username] = u
	return nil
}

func newAuthEnv(t *testing.T, activo bool) (AuthService, *config.Config) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &stubUsuarioRepo{usuarios: map[string]*model.Usuario{
		"cajera1": {Username: "cajera1", PasswordHash: string(hash), Rol: "cajero", Activo: activo},
	}}
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpirationHours: 8}
	return NewAuthService(repo, cfg), cfg
}

func TestLogin_EmiteTokenConClaims(t *testing.T) {
	svc, cfg := newAuthEnv(t, true)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "cajera1", Password: "secreto123"})
	require.NoError(t, err)

	assert.Equal(t, "cajera1", resp.Usuario)
	assert.Equal(t, "cajero", resp.Rol)
	assert.Equal(t, 8*3600, resp.ExpiresIn)

	token, err := jwt.Parse(resp.Token, func(*jwt.Token) (any, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "cajera1", claims["username"])
	assert.Equal(t, "cajero", claims["rol"])
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	svc, _ := newAuthEnv(t, true)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "cajera1", Password: "otra"})
	assert.EqualError(t, err, "credenciales invalidas")
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	svc, _ := newAuthEnv(t, true)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "secreto123"})
	assert.EqualError(t, err, "credenciales invalidas")
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	svc, _ := newAuthEnv(t, false)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "cajera1", Password: "secreto123"})
	assert.EqualError(t, err, "credenciales invalidas")
}
