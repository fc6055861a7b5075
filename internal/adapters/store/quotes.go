package store

import (
	"context"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/jsamuelsen/quotes-api/internal/domain"
)

// QuoteRepository implements ports.QuoteRepository.
type QuoteRepository struct {
	db *gorm.DB
}

func preloadTags(db *gorm.DB) *gorm.DB {
	return db.Preload("Tags", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("tags.id")
	})
}

// ListByUser returns the user's quotes in ascending id order.
func (r *QuoteRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Quote, error) {
	var recs []quoteRecord

	err := preloadTags(r.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("id").
		Find(&recs).Error
	if err != nil {
		return nil, wrap("listing quotes", err)
	}

	return lo.Map(recs, func(rec quoteRecord, _ int) domain.Quote { return rec.toDomain() }), nil
}

// Create stores the quote and its tag links in one transaction.
func (r *QuoteRepository) Create(ctx context.Context, q domain.NewQuote) (*domain.Quote, error) {
	rec := quoteRecord{Text: q.Text, UserID: q.UserID}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Create(&rec).Error; err != nil {
			return err
		}

		if len(q.TagIDs) == 0 {
			return nil
		}

		links := lo.Map(lo.Uniq(q.TagIDs), func(tagID int64, _ int) quoteTagRecord {
			return quoteTagRecord{QuoteID: rec.ID, TagID: tagID}
		})

		return tx.Create(&links).Error
	})
	if err != nil {
		return nil, wrap("creating quote", translate(err, "quote", ""))
	}

	return r.GetByID(ctx, rec.ID)
}

// GetByID returns the quote with its tags.
func (r *QuoteRepository) GetByID(ctx context.Context, id int64) (*domain.Quote, error) {
	var rec quoteRecord

	if err := preloadTags(r.db.WithContext(ctx)).First(&rec, id).Error; err != nil {
		return nil, wrap("getting quote", translate(err, "quote", idString(id)))
	}

	q := rec.toDomain()

	return &q, nil
}

// Delete removes the quote and its tag links and returns what was deleted.
func (r *QuoteRepository) Delete(ctx context.Context, id int64) (*domain.Quote, error) {
	var rec quoteRecord

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := preloadTags(tx).First(&rec, id).Error; err != nil {
			return err
		}

		if err := tx.Where("quote_id = ?", id).Delete(&quoteTagRecord{}).Error; err != nil {
			return err
		}

		return tx.Delete(&quoteRecord{}, id).Error
	})
	if err != nil {
		return nil, wrap("deleting quote", translate(err, "quote", idString(id)))
	}

	q := rec.toDomain()

	return &q, nil
}
