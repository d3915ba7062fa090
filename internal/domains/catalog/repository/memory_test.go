package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-catalog/internal/domains/catalog/model"
)

func fixedBook(isbn, title string) model.Book {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	return model.Book{
		ID:               uuid.MustParse("3f8e27a2-0c64-4d2b-9c2a-55f26dd65a01"),
		ISBN:             isbn,
		Title:            title,
		Author:           "Lyra Silverstar",
		Price:            decimal.NewFromFloat(9.90),
		Publisher:        "Polarsophia",
		CreatedDate:      created,
		LastModifiedDate: created,
		CreatedBy:        "alice",
		LastModifiedBy:   "alice",
		Version:          0,
	}
}

func TestGetMissingFailsNotFound(t *testing.T) {
	repo := NewMemoryRepository()

	_, err := repo.Get(context.Background(), "978-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrBookNotFound))
	assert.Equal(t, "The book with ISBN 978-1 was not found.", err.Error())
}

func TestAddThenGetReturnsEqualRecord(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	book := fixedBook("978-1", "Northern Lights")

	added, err := repo.Add(ctx, book)
	require.NoError(t, err)
	assert.Equal(t, book, *added)

	got, err := repo.Get(ctx, "978-1")
	require.NoError(t, err)
	assert.Equal(t, book, *got)
}

func TestAddDuplicateFailsAndKeepsFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	first := fixedBook("978-1", "Northern Lights")
	_, err := repo.Add(ctx, first)
	require.NoError(t, err)

	second := fixedBook("978-1", "Impostor")
	_, err = repo.Add(ctx, second)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrBookAlreadyExists))
	assert.Equal(t, "A book with ISBN 978-1 already exists.", err.Error())

	got, err := repo.Get(ctx, "978-1")
	require.NoError(t, err)
	assert.Equal(t, "Northern Lights", got.Title)
}

func TestEditReplacesEditableFieldsOnly(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	book := fixedBook("978-1", "Northern Lights")

	_, err := repo.Add(ctx, book)
	require.NoError(t, err)

	patch := model.BookPatch{
		Title:     "Polar Journey",
		Author:    "Iorek Byrnison",
		Price:     decimal.NewFromFloat(12.50),
		Publisher: "Svalbard Press",
	}

	updated, err := repo.Edit(ctx, "978-1", patch)
	require.NoError(t, err)

	assert.Equal(t, "Polar Journey", updated.Title)
	assert.Equal(t, "Iorek Byrnison", updated.Author)
	assert.True(t, updated.Price.Equal(decimal.NewFromFloat(12.50)))
	assert.Equal(t, "Svalbard Press", updated.Publisher)

	assert.Equal(t, book.ID, updated.ID)
	assert.Equal(t, book.ISBN, updated.ISBN)
	assert.Equal(t, book.CreatedDate, updated.CreatedDate)
	assert.Equal(t, book.LastModifiedDate, updated.LastModifiedDate)
	assert.Equal(t, book.CreatedBy, updated.CreatedBy)
	assert.Equal(t, book.LastModifiedBy, updated.LastModifiedBy)
	assert.Equal(t, book.Version, updated.Version)

	got, err := repo.Get(ctx, "978-1")
	require.NoError(t, err)
	assert.Equal(t, *updated, *got)
}

func TestEditMissingFailsWithoutWriting(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	_, err := repo.Edit(ctx, "978-1", model.BookPatch{Title: "Ghost"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrBookNotFound))

	books, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestRemoveExistingThenGetFails(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	_, err := repo.Add(ctx, fixedBook("978-1", "Northern Lights"))
	require.NoError(t, err)

	require.NoError(t, repo.Remove(ctx, "978-1"))

	_, err = repo.Get(ctx, "978-1")
	assert.True(t, errors.Is(err, model.ErrBookNotFound))
}

func TestRemoveMissingFailsNotFound(t *testing.T) {
	repo := NewMemoryRepository()

	err := repo.Remove(context.Background(), "978-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrBookNotFound))
}

func TestListReturnsSnapshotOfAllRecords(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	books, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, books)

	_, err = repo.Add(ctx, fixedBook("978-1", "Northern Lights"))
	require.NoError(t, err)
	second := fixedBook("978-2", "The Subtle Knife")
	second.ID = uuid.MustParse("7b1d8c90-1f3a-4e58-8a22-9f60ce81b502")
	_, err = repo.Add(ctx, second)
	require.NoError(t, err)

	books, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, books, 2)

	isbns := []string{books[0].ISBN, books[1].ISBN}
	assert.ElementsMatch(t, []string{"978-1", "978-2"}, isbns)
}

func TestConcurrentAddsAreSerialized(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	var wg sync.WaitGroup
	errs := make(chan error, 10)

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Add(ctx, fixedBook("978-1", "Northern Lights"))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded, conflicted int
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		if errors.Is(err, model.ErrBookAlreadyExists) {
			conflicted++
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 9, conflicted)
}
