package store

import (
	"context"

	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jsamuelsen/quotes-api/internal/domain"
	"github.com/jsamuelsen/quotes-api/internal/ports"
)

// TagRepository implements ports.TagRepository.
type TagRepository struct {
	db *gorm.DB
}

// FindByNames returns the tags whose names are listed.
func (r *TagRepository) FindByNames(ctx context.Context, names []string) ([]domain.Tag, error) {
	if len(names) == 0 {
		return []domain.Tag{}, nil
	}

	var recs []tagRecord
	if err := r.db.WithContext(ctx).Where("name IN ?", names).Find(&recs).Error; err != nil {
		return nil, wrap("finding tags", err)
	}

	return lo.Map(recs, func(rec tagRecord, _ int) domain.Tag { return rec.toDomain() }), nil
}

// CreateIgnoringConflicts batch inserts tags, skipping names that exist.
func (r *TagRepository) CreateIgnoringConflicts(ctx context.Context, tags []domain.Tag) (int64, error) {
	if len(tags) == 0 {
		return 0, nil
	}

	recs := lo.Map(tags, func(t domain.Tag, _ int) tagRecord {
		return tagRecord{Name: t.Name, Color: t.Color}
	})

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&recs)
	if res.Error != nil {
		return 0, wrap("creating tags", res.Error)
	}

	return res.RowsAffected, nil
}

// DeleteOrphaned removes the listed tags that no quote_tags row references.
func (r *TagRepository) DeleteOrphaned(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	res := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Where("NOT EXISTS (SELECT 1 FROM quote_tags WHERE quote_tags.tag_id = tags.id)").
		Delete(&tagRecord{})
	if res.Error != nil {
		return 0, wrap("deleting orphaned tags", res.Error)
	}

	return res.RowsAffected, nil
}

// WithinTx runs fn against a repository bound to one transaction.
func (r *TagRepository) WithinTx(ctx context.Context, fn func(context.Context, ports.TagRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &TagRepository{db: tx})
	})
}

var (
	_ ports.UserRepository  = (*UserRepository)(nil)
	_ ports.QuoteRepository = (*QuoteRepository)(nil)
	_ ports.TagRepository   = (*TagRepository)(nil)
)
