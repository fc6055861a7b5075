package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotes-api/internal/app/session"
	"github.com/jsamuelsen/quotes-api/internal/domain"
	"github.com/jsamuelsen/quotes-api/internal/mocks"
)

// discardLogger returns a logger that discards all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func asUser(id int64) context.Context {
	return session.WithSession(context.Background(), session.Session{UserID: id})
}

func newQuoteService(t *testing.T) (*QuoteService, *mocks.MockQuoteRepository, *mocks.MockTagRepository) {
	t.Helper()

	quotes := mocks.NewMockQuoteRepository(t)
	tags := mocks.NewMockTagRepository(t)

	svc := NewQuoteService(QuoteServiceConfig{
		Quotes: quotes,
		Tags:   NewTagService(TagServiceConfig{Tags: tags, Logger: discardLogger()}),
		Logger: discardLogger(),
	})

	return svc, quotes, tags
}

func TestNewQuoteService_PanicsWithoutDependencies(t *testing.T) {
	assert.Panics(t, func() {
		NewQuoteService(QuoteServiceConfig{Quotes: mocks.NewMockQuoteRepository(t)})
	})
}

func TestQuoteService_RequiresSession(t *testing.T) {
	svc, _, _ := newQuoteService(t)
	ctx := context.Background()

	_, err := svc.List(ctx)
	require.ErrorIs(t, err, session.ErrNoSession)

	_, err = svc.Create(ctx, "text", nil)
	require.ErrorIs(t, err, session.ErrNoSession)

	_, err = svc.Delete(ctx, 1)
	require.ErrorIs(t, err, session.ErrNoSession)
}

func TestQuoteService_List(t *testing.T) {
	svc, quotes, _ := newQuoteService(t)

	want := []domain.Quote{
		{ID: 1, Text: "a", UserID: 3},
		{ID: 2, Text: "b", UserID: 3, Tags: []domain.Tag{{ID: 1, Name: "x", Color: "#000000"}}},
	}
	quotes.EXPECT().ListByUser(mock.Anything, int64(3)).Return(want, nil)

	got, err := svc.List(asUser(3))

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestQuoteService_List_StoreError(t *testing.T) {
	svc, quotes, _ := newQuoteService(t)
	quotes.EXPECT().ListByUser(mock.Anything, int64(3)).Return(nil, errors.New("boom"))

	_, err := svc.List(asUser(3))

	require.Error(t, err)
	assert.Equal(t, domain.KindInternal, domain.KindOf(err))
}

func TestQuoteService_Create_WithoutTags(t *testing.T) {
	svc, quotes, tags := newQuoteService(t)

	created := &domain.Quote{ID: 10, Text: "hello", UserID: 3, CreatedAt: time.Now()}
	quotes.EXPECT().Create(mock.Anything, domain.NewQuote{Text: "hello", UserID: 3}).Return(created, nil)

	got, err := svc.Create(asUser(3), "hello", []string{})

	require.NoError(t, err)
	assert.Equal(t, created, got)
	tags.AssertNotCalled(t, "WithinTx", mock.Anything, mock.Anything)
}

func TestQuoteService_Create_WithTags(t *testing.T) {
	svc, quotes, tags := newQuoteService(t)

	inTx(tags)
	tags.EXPECT().FindByNames(mock.Anything, []string{"x", "y"}).
		Return([]domain.Tag{{ID: 4, Name: "y"}, {ID: 5, Name: "x"}}, nil)

	created := &domain.Quote{
		ID: 11, Text: "hello", UserID: 3,
		Tags: []domain.Tag{{ID: 5, Name: "x"}, {ID: 4, Name: "y"}},
	}
	quotes.EXPECT().Create(mock.Anything, domain.NewQuote{Text: "hello", UserID: 3, TagIDs: []int64{5, 4}}).
		Return(created, nil)

	got, err := svc.Create(asUser(3), "hello", []string{"x", "y", "x"})

	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestQuoteService_Create_UpsertFailsBeforeWrite(t *testing.T) {
	svc, _, tags := newQuoteService(t)
	tags.EXPECT().WithinTx(mock.Anything, mock.Anything).Return(errors.New("boom"))

	_, err := svc.Create(asUser(3), "hello", []string{"x"})

	require.Error(t, err)
	step, ok := GetExecutionStep(err)
	require.True(t, ok)
	assert.Equal(t, StepLoad, step)
}

func TestQuoteService_Delete(t *testing.T) {
	tagged := &domain.Quote{
		ID: 5, Text: "q", UserID: 3,
		Tags: []domain.Tag{{ID: 1, Name: "x"}, {ID: 2, Name: "y"}},
	}
	untagged := &domain.Quote{ID: 6, Text: "q", UserID: 3}

	tests := []struct {
		name        string
		id          int64
		setup       func(*mocks.MockQuoteRepository, *mocks.MockTagRepository)
		expected    *domain.Quote
		expectedMsg string
		expectedErr domain.Kind
	}{
		{
			name: "owner deletes tagged quote and orphans are cleaned",
			id:   5,
			setup: func(q *mocks.MockQuoteRepository, tg *mocks.MockTagRepository) {
				q.EXPECT().GetByID(mock.Anything, int64(5)).Return(tagged, nil)
				q.EXPECT().Delete(mock.Anything, int64(5)).Return(tagged, nil)
				tg.EXPECT().DeleteOrphaned(mock.Anything, []int64{1, 2}).Return(1, nil)
			},
			expected: tagged,
		},
		{
			name: "owner deletes untagged quote without cleanup",
			id:   6,
			setup: func(q *mocks.MockQuoteRepository, _ *mocks.MockTagRepository) {
				q.EXPECT().GetByID(mock.Anything, int64(6)).Return(untagged, nil)
				q.EXPECT().Delete(mock.Anything, int64(6)).Return(untagged, nil)
			},
			expected: untagged,
		},
		{
			name: "missing quote",
			id:   404,
			setup: func(q *mocks.MockQuoteRepository, _ *mocks.MockTagRepository) {
				q.EXPECT().GetByID(mock.Anything, int64(404)).
					Return(nil, domain.NewNotFoundError("quote", "404"))
			},
			expectedMsg: MsgQuoteNotFound,
			expectedErr: domain.KindValidation,
		},
		{
			name: "someone else's quote",
			id:   5,
			setup: func(q *mocks.MockQuoteRepository, _ *mocks.MockTagRepository) {
				q.EXPECT().GetByID(mock.Anything, int64(5)).
					Return(&domain.Quote{ID: 5, UserID: 99, Tags: tagged.Tags}, nil)
			},
			expectedMsg: MsgNotQuoteOwner,
			expectedErr: domain.KindUnauthorized,
		},
		{
			name: "quote vanished between check and delete",
			id:   5,
			setup: func(q *mocks.MockQuoteRepository, _ *mocks.MockTagRepository) {
				q.EXPECT().GetByID(mock.Anything, int64(5)).Return(tagged, nil)
				q.EXPECT().Delete(mock.Anything, int64(5)).
					Return(nil, domain.NewNotFoundError("quote", "5"))
			},
			expectedMsg: MsgQuoteNotFound,
			expectedErr: domain.KindValidation,
		},
		{
			name: "orphan cleanup fails",
			id:   5,
			setup: func(q *mocks.MockQuoteRepository, tg *mocks.MockTagRepository) {
				q.EXPECT().GetByID(mock.Anything, int64(5)).Return(tagged, nil)
				q.EXPECT().Delete(mock.Anything, int64(5)).Return(tagged, nil)
				tg.EXPECT().DeleteOrphaned(mock.Anything, []int64{1, 2}).Return(0, errors.New("boom"))
			},
			expectedErr: domain.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, quotes, tags := newQuoteService(t)
			tt.setup(quotes, tags)

			got, err := svc.Delete(asUser(3), tt.id)

			if tt.expected != nil {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, got)
				return
			}

			require.Error(t, err)
			assert.Nil(t, got)
			assert.Equal(t, tt.expectedErr, domain.KindOf(err))

			if tt.expectedMsg != "" {
				msg, ok := domain.PublicMessage(err)
				require.True(t, ok)
				assert.Equal(t, tt.expectedMsg, msg)
			}
		})
	}
}

func TestQuoteService_Delete_ChecksRunBeforeMutation(t *testing.T) {
	svc, quotes, tags := newQuoteService(t)
	quotes.EXPECT().GetByID(mock.Anything, int64(5)).
		Return(&domain.Quote{ID: 5, UserID: 99}, nil)

	_, err := svc.Delete(asUser(3), 5)

	require.Error(t, err)
	quotes.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	tags.AssertNotCalled(t, "DeleteOrphaned", mock.Anything, mock.Anything)
}
