package services

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hotel-site-backend/models"
)

const (
	tokenTTL          = 24 * time.Hour
	minPasswordLength = 6
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
)

// Claims is the JWT payload for a signed-in account.
type Claims struct {
	UserID  uint   `json:"uid"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

type AuthService struct {
	db     *gorm.DB
	secret []byte
}

func NewAuthService(db *gorm.DB, secret string) *AuthService {
	return &AuthService{db: db, secret: []byte(secret)}
}

// SignIn verifies email+password and issues a session token. The error is
// deliberately the same for unknown email and wrong password.
func (s *AuthService) SignIn(email, password string) (string, models.Admin, error) {
	var account models.Admin

	email = normalizeEmail(email)
	if err := s.db.Where("email = ?", email).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", account, ErrInvalidCredentials
		}
		return "", account, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)) != nil {
		return "", account, ErrInvalidCredentials
	}

	token, err := s.issueToken(account)
	return token, account, err
}

// SignUp registers a new account. It is not an administrator until promoted;
// the admin routes reject it meanwhile.
func (s *AuthService) SignUp(email, password, fullName string) (models.Admin, error) {
	var account models.Admin

	email = normalizeEmail(email)
	if email == "" {
		return account, errors.New("email is required")
	}
	if len(password) < minPasswordLength {
		return account, ErrWeakPassword
	}

	var existing int64
	if err := s.db.Model(&models.Admin{}).Where("email = ?", email).Count(&existing).Error; err != nil {
		return account, err
	}
	if existing > 0 {
		return account, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return account, err
	}

	account = models.Admin{Email: email, Password: string(hash)}
	if name := strings.TrimSpace(fullName); name != "" {
		account.FullName = &name
	}
	err = s.db.Create(&account).Error
	return account, err
}

// ChangePassword re-verifies the current password before updating, the same
// check a fresh sign-in attempt would perform.
func (s *AuthService) ChangePassword(id uint, current, next string) error {
	var account models.Admin
	if err := s.db.First(&account, id).Error; err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(current)) != nil {
		return ErrWrongPassword
	}
	if len(next) < minPasswordLength {
		return ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.db.Model(&account).Update("password", string(hash)).Error
}

func (s *AuthService) GetAccount(id uint) (models.Admin, error) {
	var account models.Admin
	err := s.db.First(&account, id).Error
	return account, err
}

// UpdateProfile sets the profile fields; nil means leave unchanged, an empty
// string clears the field (stored as absent, not "").
func (s *AuthService) UpdateProfile(id uint, fullName, avatarURL *string) (models.Admin, error) {
	var account models.Admin
	if err := s.db.First(&account, id).Error; err != nil {
		return account, err
	}

	if fullName != nil {
		account.FullName = optional(*fullName)
	}
	if avatarURL != nil {
		account.AvatarURL = optional(*avatarURL)
	}

	err := s.db.Save(&account).Error
	return account, err
}

func (s *AuthService) issueToken(account models.Admin) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:  account.ID,
		Email:   account.Email,
		IsAdmin: account.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ParseToken validates a bearer token and returns its claims.
func (s *AuthService) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
