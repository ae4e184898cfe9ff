package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/marcosmapl/studium-backend-sub002/config"
	"github.com/marcosmapl/studium-backend-sub002/dto"
	"github.com/marcosmapl/studium-backend-sub002/models"
	"github.com/marcosmapl/studium-backend-sub002/repositories"
	"github.com/marcosmapl/studium-backend-sub002/utils"
	"go.uber.org/zap"
)

var (
	// ErrCredenciaisInvalidas: unknown username or wrong password.
	ErrCredenciaisInvalidas = errors.New("Credenciais inválidas")
	// ErrUsuarioBloqueado: the account exhausted its login attempts.
	// There is no unlock endpoint; an administrator resets the counter
	// directly in the store.
	ErrUsuarioBloqueado = errors.New("Usuário bloqueado por excesso de tentativas")
	// ErrUsuarioInativo: the account status does not allow logging in.
	ErrUsuarioInativo = errors.New("Usuário inativo")
)

// AuthService authenticates users and issues/verifies bearer tokens.
type AuthService struct {
	usuarios  *repositories.UsuarioRepository
	segredo   string
	expiracao time.Duration
	logger    *zap.Logger
}

// NewAuthService creates the authentication service.
func NewAuthService(usuarios *repositories.UsuarioRepository, cfg *config.Config, logger *zap.Logger) *AuthService {
	return &AuthService{
		usuarios:  usuarios,
		segredo:   cfg.JWTSecret,
		expiracao: cfg.JWTExpiracao,
		logger:    logger,
	}
}

// Login authenticates a user and returns a signed token.
//
// Lockout contract: a blocked account answers ErrUsuarioBloqueado even when
// the password is correct; each wrong password decrements the remaining
// attempts; a successful login restores the counter to its maximum and
// stamps the last access.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := s.usuarios.FindByNomeUsuario(ctx, req.NomeUsuario)
	if err != nil {
		if errors.Is(err, repositories.ErrNaoEncontrado) {
			s.logger.Warn("login: usuário desconhecido", zap.String("nomeUsuario", req.NomeUsuario))
			return nil, ErrCredenciaisInvalidas
		}
		return nil, err
	}

	if usuario.Bloqueado() {
		s.logger.Warn("login: conta bloqueada", zap.Uint("usuarioId", usuario.ID))
		return nil, ErrUsuarioBloqueado
	}
	if !usuario.Ativo() {
		s.logger.Warn("login: conta inativa", zap.Uint("usuarioId", usuario.ID))
		return nil, ErrUsuarioInativo
	}

	if err := utils.CompararSenha(usuario.Senha, req.Senha); err != nil {
		restantes := usuario.TentativasLogin - 1
		if err := s.usuarios.RegistrarFalha(ctx, usuario.ID, restantes); err != nil {
			s.logger.Error("login: falha ao registrar tentativa", zap.Error(err))
		}
		s.logger.Warn("login: senha incorreta",
			zap.Uint("usuarioId", usuario.ID),
			zap.Int("tentativasRestantes", restantes))
		return nil, ErrCredenciaisInvalidas
	}

	agora := time.Now()
	if err := s.usuarios.RegistrarAcesso(ctx, usuario.ID, agora); err != nil {
		return nil, err
	}

	token, expiraEm, err := s.GerarToken(usuario)
	if err != nil {
		return nil, err
	}

	usuario.TentativasLogin = models.MaxTentativasLogin
	usuario.UltimoAcesso = &agora

	s.logger.Info("login: autenticado", zap.Uint("usuarioId", usuario.ID))
	return &dto.LoginResponse{
		Usuario:  *usuario,
		Token:    token,
		ExpiraEm: expiraEm,
	}, nil
}

// GerarToken generates a new HS256 JWT for a user.
func (s *AuthService) GerarToken(usuario *models.Usuario) (string, time.Time, error) {
	if s.segredo == "" {
		return "", time.Time{}, errors.New("JWT_SECRET not set in environment")
	}

	agora := time.Now()
	expiraEm := agora.Add(s.expiracao)

	claims := dto.TokenClaims{
		UsuarioID:   usuario.ID,
		NomeUsuario: usuario.NomeUsuario,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiraEm),
			IssuedAt:  jwt.NewNumericDate(agora),
			NotBefore: jwt.NewNumericDate(agora),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	assinado, err := token.SignedString([]byte(s.segredo))
	if err != nil {
		return "", time.Time{}, err
	}
	return assinado, expiraEm, nil
}

// ValidarToken validates a JWT and returns its claims if valid.
func (s *AuthService) ValidarToken(tokenString string) (*dto.TokenClaims, error) {
	if s.segredo == "" {
		return nil, errors.New("JWT_SECRET not set in environment")
	}

	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.segredo), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
