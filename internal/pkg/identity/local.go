package identity

import (
	"context"
	"errors"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// LocalProvider is a self-contained identity provider for development and
// tests: credentials live in their own table and tokens are HS256 JWTs.
// It mirrors the Provider contract exactly so the rest of the service
// cannot tell it apart from the hosted one.
type LocalProvider struct {
	db     *gorm.DB
	secret []byte
	ttl    time.Duration
}

type localClaims struct {
	Email string `json:"email"`
	jwtlib.RegisteredClaims
}

type identityUser struct {
	UID          string    `gorm:"column:uid;primaryKey;size:128"`
	Email        string    `gorm:"column:email;uniqueIndex;size:255;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	DisplayName  string    `gorm:"column:display_name;size:100"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (identityUser) TableName() string { return "identity_users" }

func NewLocalProvider(db *gorm.DB, secret string, ttl time.Duration) (*LocalProvider, error) {
	if err := db.AutoMigrate(&identityUser{}); err != nil {
		return nil, err
	}
	return &LocalProvider{db: db, secret: []byte(secret), ttl: ttl}, nil
}

func (p *LocalProvider) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var count int64
	if err := p.db.WithContext(ctx).Model(&identityUser{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return "", err
	}
	if count > 0 {
		return "", ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	u := identityUser{
		UID:          uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  displayName,
	}
	if err := p.db.WithContext(ctx).Create(&u).Error; err != nil {
		return "", err
	}
	return u.UID, nil
}

func (p *LocalProvider) DeleteUser(ctx context.Context, uid string) error {
	return p.db.WithContext(ctx).Where("uid = ?", uid).Delete(&identityUser{}).Error
}

func (p *LocalProvider) CustomToken(ctx context.Context, uid string) (string, error) {
	var u identityUser
	if err := p.db.WithContext(ctx).Where("uid = ?", uid).First(&u).Error; err != nil {
		return "", err
	}

	claims := localClaims{
		Email: u.Email,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   u.UID,
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(p.ttl)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now()),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

func (p *LocalProvider) VerifyToken(ctx context.Context, tokenStr string) (*Principal, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &localClaims{}, func(t *jwtlib.Token) (any, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*localClaims)
	if !ok || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return &Principal{UID: claims.Subject, Email: claims.Email}, nil
}
