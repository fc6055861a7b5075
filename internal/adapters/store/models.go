package store

import (
	"fmt"
	"strconv"
	"time"

	"github.com/samber/lo"

	"github.com/jsamuelsen/quotes-api/internal/domain"
)

type userRecord struct {
	ID        int64  `gorm:"primaryKey"`
	Username  string `gorm:"not null;uniqueIndex:users_username_key"`
	Password  string `gorm:"not null"`
	CreatedAt time.Time
}

func (userRecord) TableName() string { return "users" }

func (r *userRecord) toDomain() *domain.User {
	return &domain.User{ID: r.ID, Username: r.Username, PasswordHash: r.Password}
}

type quoteRecord struct {
	ID        int64  `gorm:"primaryKey"`
	Text      string `gorm:"not null"`
	UserID    int64  `gorm:"not null;index"`
	CreatedAt time.Time
	Tags      []tagRecord `gorm:"many2many:quote_tags;joinForeignKey:QuoteID;joinReferences:TagID"`
}

func (quoteRecord) TableName() string { return "quotes" }

func (r *quoteRecord) toDomain() domain.Quote {
	return domain.Quote{
		ID:        r.ID,
		Text:      r.Text,
		UserID:    r.UserID,
		CreatedAt: r.CreatedAt,
		Tags:      lo.Map(r.Tags, func(t tagRecord, _ int) domain.Tag { return t.toDomain() }),
	}
}

type tagRecord struct {
	ID    int64  `gorm:"primaryKey"`
	Name  string `gorm:"not null;uniqueIndex:tags_name_key"`
	Color string `gorm:"not null"`
}

func (tagRecord) TableName() string { return "tags" }

func (r tagRecord) toDomain() domain.Tag {
	return domain.Tag{ID: r.ID, Name: r.Name, Color: r.Color}
}

type quoteTagRecord struct {
	QuoteID int64 `gorm:"primaryKey"`
	TagID   int64 `gorm:"primaryKey"`
}

func (quoteTagRecord) TableName() string { return "quote_tags" }

func domainNotFound(entity, id string) error {
	return domain.NewNotFoundError(entity, id)
}

func domainConflict(entity string, cause error) error {
	return &domain.ConflictError{Entity: entity, Reason: "duplicate key", Details: cause.Error()}
}

func idString(id int64) string {
	return strconv.FormatInt(id, 10)
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", op, err)
}
