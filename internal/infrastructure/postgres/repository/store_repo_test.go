package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/LavaJover/shvark-storefront-service/internal/domain"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore() *domain.Store {
	now := time.Now().UTC()
	return &domain.Store{
		ID:            "store-1",
		Slug:          "rose-shop",
		OwnerID:       "merchant-1",
		ApplicationID: "app-1",
		Name:          "Rose Shop",
		Settings:      domain.StoreSettings{Currency: "SAR", Language: "ar"},
		Status:        domain.StoreActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestStoreRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDefaultStoreRepository(db)

	mock.ExpectExec(`INSERT INTO "stores"`).WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateStore(context.Background(), newStore()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreRepository_DuplicateSlug(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDefaultStoreRepository(db)

	mock.ExpectExec(`INSERT INTO "stores"`).WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectQuery(`SELECT \* FROM "stores" WHERE application_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := repo.CreateStore(context.Background(), newStore())

	assert.ErrorIs(t, err, domain.ErrSlugTaken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreRepository_DuplicateApplication(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDefaultStoreRepository(db)

	mock.ExpectExec(`INSERT INTO "stores"`).WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectQuery(`SELECT \* FROM "stores" WHERE application_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "slug", "application_id"}).AddRow("store-0", "rose-shop", "app-1"))

	err := repo.CreateStore(context.Background(), newStore())

	assert.ErrorIs(t, err, domain.ErrStoreExists)
}

func TestStoreRepository_GetBySlugDecodesJSONColumns(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDefaultStoreRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "stores" WHERE slug = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "slug", "owner_id", "branding", "settings", "currency", "status"}).
			AddRow("store-1", "rose-shop", "merchant-1",
				[]byte(`{"colors":{"primary":"#000","accent":"#f0f"},"headingFont":"Cairo","bodyFont":"Tajawal"}`),
				[]byte(`{"cashOnDelivery":true,"taxEnabled":true,"taxRate":15}`),
				"SAR", "active"))

	store, err := repo.GetStoreBySlug(context.Background(), "rose-shop")

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, "#f0f", store.Branding.Colors.Accent)
	assert.Equal(t, "Cairo", store.Branding.Fonts.Heading)
	assert.True(t, store.Settings.Payment.CashOnDelivery)
	assert.Equal(t, 15.0, store.Settings.Tax.Rate)
	assert.Equal(t, domain.StoreActive, store.Status)
}

func TestStoreRepository_GetBySlugMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDefaultStoreRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "stores" WHERE slug = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	store, err := repo.GetStoreBySlug(context.Background(), "nope")

	require.NoError(t, err)
	assert.Nil(t, store)
}
