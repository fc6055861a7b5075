package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"

	"github.com/jsamuelsen/quotes-api/internal/domain"
	"github.com/jsamuelsen/quotes-api/internal/platform/logging"
	"github.com/jsamuelsen/quotes-api/internal/platform/metrics"
	"github.com/jsamuelsen/quotes-api/internal/platform/telemetry"
	"github.com/jsamuelsen/quotes-api/internal/ports"
)

// ColorFunc returns a colour in #rrggbb form.
type ColorFunc func() string

// RandomColor returns a random saturated colour.
func RandomColor() string {
	return colorful.FastHappyColor().Hex()
}

// TagService resolves tag names to ids and removes unused tags.
type TagService struct {
	tags    ports.TagRepository
	color   ColorFunc
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// TagServiceConfig contains configuration for the tag service.
type TagServiceConfig struct {
	Tags    ports.TagRepository
	Color   ColorFunc // defaults to RandomColor
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// NewTagService creates a new tag service. It panics if Tags is nil.
func NewTagService(cfg TagServiceConfig) *TagService {
	if cfg.Tags == nil {
		panic("app: NewTagService requires a TagRepository")
	}

	color := cfg.Color
	if color == nil {
		color = RandomColor
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &TagService{
		tags:    cfg.Tags,
		color:   color,
		metrics: cfg.Metrics,
		logger:  logger.With(slog.String("component", "app.TagService")),
	}
}

// UpsertTags returns one id per distinct name, in order of first occurrence,
// creating the tags that do not exist yet. Lookup, insert and re-query share
// one transaction; an insert that loses a race on the unique name is skipped
// and the winner's row is returned instead.
func (s *TagService) UpsertTags(ctx context.Context, names []string) (ids []int64, err error) {
	if len(names) == 0 {
		return []int64{}, nil
	}

	ctx, span := telemetry.StartSpan(ctx, "TagService.UpsertTags", attribute.Int("tags.requested", len(names)))
	defer func() { telemetry.EndSpan(span, err) }()

	distinct := lo.Uniq(names)

	var inserted int64

	err = s.tags.WithinTx(ctx, func(ctx context.Context, tx ports.TagRepository) error {
		existing, err := tx.FindByNames(ctx, distinct)
		if err != nil {
			return fmt.Errorf("finding tags: %w", err)
		}

		byName := lo.SliceToMap(existing, func(t domain.Tag) (string, int64) {
			return t.Name, t.ID
		})

		missing := lo.Reject(distinct, func(name string, _ int) bool {
			_, ok := byName[name]
			return ok
		})

		if len(missing) > 0 {
			newTags := lo.Map(missing, func(name string, _ int) domain.Tag {
				return domain.Tag{Name: name, Color: s.color()}
			})

			inserted, err = tx.CreateIgnoringConflicts(ctx, newTags)
			if err != nil {
				return fmt.Errorf("creating tags: %w", err)
			}

			created, err := tx.FindByNames(ctx, missing)
			if err != nil {
				return fmt.Errorf("re-reading created tags: %w", err)
			}

			for _, t := range created {
				byName[t.Name] = t.ID
			}
		}

		ids = make([]int64, 0, len(distinct))
		for _, name := range distinct {
			id, ok := byName[name]
			if !ok {
				return fmt.Errorf("tag %q missing after insert", name)
			}

			ids = append(ids, id)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("upserting tags: %w", err)
	}

	s.metrics.TagsCreated(int(inserted))

	logging.FromContext(ctx).DebugContext(ctx, "tags resolved",
		slog.Int("requested", len(distinct)),
		slog.Int64("created", inserted),
	)

	return ids, nil
}

// DeleteOrphanedTags deletes the listed tags that no quote references.
func (s *TagService) DeleteOrphanedTags(ctx context.Context, ids []int64) (err error) {
	if len(ids) == 0 {
		return nil
	}

	ctx, span := telemetry.StartSpan(ctx, "TagService.DeleteOrphanedTags", attribute.Int("tags.candidates", len(ids)))
	defer func() { telemetry.EndSpan(span, err) }()

	removed, err := s.tags.DeleteOrphaned(ctx, lo.Uniq(ids))
	if err != nil {
		return fmt.Errorf("deleting orphaned tags: %w", err)
	}

	s.metrics.OrphanTagsDeleted(removed)

	if removed > 0 {
		s.logger.InfoContext(ctx, "orphaned tags deleted", slog.Int64("count", removed))
	}

	return nil
}
