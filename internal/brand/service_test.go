package brand

import (
	"context"
	"testing"

	"dealership_backend/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Brand{}))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
	return NewService(NewGORMRepository(db), zap.NewNop())
}

func strPtr(s string) *string { return &s }

func TestAdminCreateBrand_DerivesSlugFromName(t *testing.T) {
	svc := newTestService(t)
	input, err := ValidateCreate(map[string]any{"name": "Alfa Romeo"})
	require.NoError(t, err)

	b, err := svc.AdminCreateBrand(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "alfa-romeo", b.Slug)
	assert.True(t, common.IsValidID(b.ID))

	found, err := svc.GetBrandBySlug(context.Background(), "alfa-romeo")
	require.NoError(t, err)
	assert.Equal(t, b.ID, found.ID)
}

func TestAdminCreateBrand_DuplicateSlugConflicts(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.AdminCreateBrand(context.Background(), CreateBrandInput{Name: "Volvo", Slug: strPtr("volvo")})
	require.NoError(t, err)

	_, err = svc.AdminCreateBrand(context.Background(), CreateBrandInput{Name: "Volvo Cars", Slug: strPtr("volvo")})
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestAdminUpdateBrand_PartialPatch(t *testing.T) {
	svc := newTestService(t)
	created, err := svc.AdminCreateBrand(context.Background(), CreateBrandInput{
		Name:        "Volvo",
		Description: strPtr("Swedish"),
	})
	require.NoError(t, err)

	patch, err := ValidateUpdate(map[string]any{"metaTitle": "Volvo cars for sale"})
	require.NoError(t, err)
	updated, err := svc.AdminUpdateBrand(context.Background(), created.ID, patch)

	require.NoError(t, err)
	assert.Equal(t, "Volvo", updated.Name)
	assert.Equal(t, "volvo", updated.Slug)
	assert.Equal(t, "Swedish", *updated.Description)
	assert.Equal(t, "Volvo cars for sale", *updated.MetaTitle)

	unchanged, err := svc.AdminUpdateBrand(context.Background(), created.ID, UpdateBrandInput{})
	require.NoError(t, err)
	assert.Equal(t, updated.MetaTitle, unchanged.MetaTitle)
}

func TestAdminDeleteBrand(t *testing.T) {
	svc := newTestService(t)
	created, err := svc.AdminCreateBrand(context.Background(), CreateBrandInput{Name: "Saab"})
	require.NoError(t, err)

	require.NoError(t, svc.AdminDeleteBrand(context.Background(), created.ID))
	assert.ErrorIs(t, svc.AdminDeleteBrand(context.Background(), created.ID), common.ErrNotFound)
	assert.ErrorIs(t, svc.AdminDeleteBrand(context.Background(), "saab"), common.ErrNotFound)

	_, err = svc.GetBrandByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetAllBrands_SortedByName(t *testing.T) {
	svc := newTestService(t)
	for _, name := range []string{"Volvo", "Audi", "Mazda"} {
		_, err := svc.AdminCreateBrand(context.Background(), CreateBrandInput{Name: name})
		require.NoError(t, err)
	}

	brands, err := svc.GetAllBrands(context.Background())
	require.NoError(t, err)
	require.Len(t, brands, 3)
	assert.Equal(t, []string{"Audi", "Mazda", "Volvo"}, []string{brands[0].Name, brands[1].Name, brands[2].Name})
}
