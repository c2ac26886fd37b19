package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Pengu1Nus/recipe-api/internal/models"
	"github.com/Pengu1Nus/recipe-api/internal/types"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenLifetime = 24 * time.Hour

// AuthService issues and validates bearer tokens and manages accounts.
type AuthService struct {
	db        *gorm.DB
	jwtSecret string
	tokens    *TokenStore
}

// NewAuthService creates a new AuthService instance. The token store may
// be nil when redis is not configured.
func NewAuthService(db *gorm.DB, jwtSecret string, tokens *TokenStore) *AuthService {
	return &AuthService{
		db:        db,
		jwtSecret: jwtSecret,
		tokens:    tokens,
	}
}

// Register creates a user with a unique, non-empty username.
func (s *AuthService) Register(ctx context.Context, username, name, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, &ValidationError{Field: "username", Message: "must not be empty"}
	}
	if len(password) < 5 {
		return nil, &ValidationError{Field: "password", Message: "must be at least 5 characters"}
	}

	var existing models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&existing).Error; err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     username,
		Name:         name,
		PasswordHash: string(hashed),
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Login verifies the credentials and returns a signed bearer token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.generateToken(ctx, &user)
}

func (s *AuthService) generateToken(ctx context.Context, user *models.User) (string, error) {
	now := time.Now()
	claims := &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
		},
		UserID:   user.ID,
		Username: user.Username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}

	if s.tokens != nil {
		if err := s.tokens.Save(ctx, claims.ID, user.ID, tokenLifetime); err != nil {
			return "", err
		}
	}
	return signed, nil
}

// ValidateToken parses a bearer token and, when a token store is
// configured, checks that the session has not been revoked.
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*types.TokenClaims, error) {
	claims := &types.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if s.tokens != nil {
		alive, err := s.tokens.Valid(ctx, claims.ID)
		if err != nil {
			return nil, err
		}
		if !alive {
			return nil, ErrInvalidToken
		}
	}
	return claims, nil
}

// Logout revokes the presented token. Without a token store this is a
// no-op; the token then simply runs out at expiry.
func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.ValidateToken(ctx, tokenString)
	if err != nil {
		return err
	}
	if s.tokens == nil {
		return nil
	}
	return s.tokens.Revoke(ctx, claims.ID)
}

// GetUser returns the account for the given id.
func (s *AuthService) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateUser applies a partial update to the caller's own account.
func (s *AuthService) UpdateUser(ctx context.Context, userID uuid.UUID, req *types.UpdateUserRequest) (*models.User, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if username == "" {
			return nil, &ValidationError{Field: "username", Message: "must not be empty"}
		}
		var existing models.User
		err := s.db.WithContext(ctx).Where("username = ? AND id <> ?", username, userID).First(&existing).Error
		if err == nil {
			return nil, ErrUserExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		updates["username"] = username
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Password != nil {
		if len(*req.Password) < 5 {
			return nil, &ValidationError{Field: "password", Message: "must be at least 5 characters"}
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password_hash"] = string(hashed)
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(user).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetUser(ctx, userID)
}
