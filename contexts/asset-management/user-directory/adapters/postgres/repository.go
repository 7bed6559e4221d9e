package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"assetledger/contexts/asset-management/user-directory/domain/entities"
	domainerrors "assetledger/contexts/asset-management/user-directory/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) CreateUser(ctx context.Context, user entities.User) error {
	row := userModelFromEntity(user)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *Repository) GetUser(ctx context.Context, userID string) (entities.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", strings.TrimSpace(userID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.User{}, domainerrors.ErrUserNotFound
		}
		return entities.User{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) UpdateUser(ctx context.Context, user entities.User) error {
	result := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("user_id = ?", strings.TrimSpace(user.UserID)).
		Updates(map[string]any{
			"user_name":     user.UserName,
			"email":         user.Email,
			"password_hash": user.PasswordHash,
			"role":          string(user.Role),
			"terminated":    user.Terminated,
		})
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerrors.ErrEmailTaken
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}
	return nil
}

func (r *Repository) ListUsers(ctx context.Context) ([]entities.User, error) {
	var rows []userModel
	if err := r.db.WithContext(ctx).Order("user_name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]entities.User, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

type userModel struct {
	UserID       string `gorm:"column:user_id;primaryKey"`
	UserName     string `gorm:"column:user_name"`
	Email        string `gorm:"column:email;uniqueIndex"`
	PasswordHash string `gorm:"column:password_hash"`
	Role         string `gorm:"column:role"`
	Terminated   bool   `gorm:"column:terminated"`
}

func (userModel) TableName() string { return "users" }

func (m userModel) toEntity() entities.User {
	return entities.User{
		UserID:       m.UserID,
		UserName:     m.UserName,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         entities.Role(m.Role),
		Terminated:   m.Terminated,
	}
}

func userModelFromEntity(user entities.User) userModel {
	return userModel{
		UserID:       strings.TrimSpace(user.UserID),
		UserName:     user.UserName,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		Terminated:   user.Terminated,
	}
}
