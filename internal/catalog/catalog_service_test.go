package catalog_test

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"testing"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/catalog"
	catalogerrors "github.com/ccparagoncorp/customercare-web-sub001/internal/catalog/errors"
	catalogMock "github.com/ccparagoncorp/customercare-web-sub001/internal/catalog/mock"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/apperror"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/cache"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/testdb"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service   catalog.Service
	repo      *catalogMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	repo := catalogMock.NewMockRepository(ctrl)
	rdb, rmock := redismock.NewClientMock()

	svc := catalog.NewService(repo, cache.New(rdb, zap.NewNop()), catalog.Options{}, zap.NewNop())
	return &serviceDeps{service: svc, repo: repo, redismock: rmock}
}

// passTx runs the transaction body against the same mock.
func passTx(repo *catalogMock.MockRepository) {
	repo.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(catalog.Repository) error) error {
			return fn(repo)
		})
}

func TestService_ResolveProduct(t *testing.T) {
	t.Run("two segments resolve through subcategory", func(t *testing.T) {
		deps := setupServiceTest(t)
		want := &catalog.Product{ID: uuid.New(), Name: "Serum"}
		deps.repo.EXPECT().
			FindProductByPath(gomock.Any(), "wardah", "skincare", "serum", "crystal").
			Return(want, nil)

		got, err := deps.service.ResolveProduct(context.Background(), "wardah", "skincare", []string{"serum", "crystal"})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("one segment resolves category direct", func(t *testing.T) {
		deps := setupServiceTest(t)
		want := &catalog.Product{ID: uuid.New()}
		deps.repo.EXPECT().
			FindProductByPath(gomock.Any(), "wardah", "skincare", "", "sunscreen").
			Return(want, nil)

		got, err := deps.service.ResolveProduct(context.Background(), "wardah", "skincare", []string{"sunscreen"})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("other shapes are bad requests without touching the store", func(t *testing.T) {
		deps := setupServiceTest(t)
		for _, tail := range [][]string{nil, {}, {"a", "b", "c"}, {" "}} {
			_, err := deps.service.ResolveProduct(context.Background(), "wardah", "skincare", tail)
			assert.ErrorIs(t, err, catalogerrors.ErrInvalidProductPath, "tail %v", tail)
		}
	})

	t.Run("missing hop is not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().
			FindProductByPath(gomock.Any(), "wardah", "skincare", "serum", "ghost").
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.ResolveProduct(context.Background(), "wardah", "skincare", []string{"serum", "ghost"})
		assert.ErrorIs(t, err, catalogerrors.ErrProductNotFound)
	})

	t.Run("unreachable store is unavailable", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().
			FindProductByPath(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")})

		_, err := deps.service.ResolveProduct(context.Background(), "wardah", "skincare", []string{"x"})
		assert.Equal(t, 503, apperror.ToHTTP(err).Status)
	})
}

func TestService_ListBrandsCached(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	brands := []catalog.Brand{{ID: uuid.New(), Name: "Wardah", Slug: "wardah"}}
	encoded, _ := json.Marshal(brands)
	key := cache.Key("brand-list", nil)
	tagKey := cache.TagKey(cache.TagBrands)

	deps.redismock.ExpectGet(key).RedisNil()
	deps.repo.EXPECT().ListBrands(gomock.Any()).Return(brands, nil).Times(1)
	deps.redismock.ExpectSet(key, encoded, cache.DefaultTTL).SetVal("OK")
	deps.redismock.ExpectSAdd(tagKey, key).SetVal(1)
	deps.redismock.ExpectExpire(tagKey, cache.DefaultTTL).SetVal(true)
	deps.redismock.ExpectGet(key).SetVal(string(encoded))

	first, err := deps.service.ListBrands(ctx)
	require.NoError(t, err)
	second, err := deps.service.ListBrands(ctx)
	require.NoError(t, err)

	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, "Wardah", second[0].Name)
	assert.NoError(t, deps.redismock.ExpectationsWereMet())
}

func TestService_GetBrandNotFound(t *testing.T) {
	deps := setupServiceTest(t)
	key := cache.Key("brand-by-slug", map[string]string{"brand": "ghost"})

	deps.redismock.ExpectGet(key).RedisNil()
	deps.repo.EXPECT().FindBrandBySlug(gomock.Any(), "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := deps.service.GetBrand(context.Background(), " Ghost ")
	assert.ErrorIs(t, err, catalogerrors.ErrBrandNotFound)
}

func TestService_CreateProduct(t *testing.T) {
	categoryID := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		passTx(deps.repo)
		deps.repo.EXPECT().Exists(gomock.Any(), "categories", categoryID).Return(true, nil)
		deps.repo.EXPECT().
			UniqueSlug(gomock.Any(), "products", "sunscreen-gel", gomock.Any(), nil).
			Return("sunscreen-gel-2", nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, v any) error {
			p := v.(*catalog.Product)
			assert.Equal(t, &categoryID, p.CategoryID)
			assert.Nil(t, p.BrandID)
			assert.Nil(t, p.SubcategoryID)
			assert.Empty(t, p.Details)
			return nil
		})
		deps.repo.EXPECT().ReplaceProductDetails(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, productID uuid.UUID, details []catalog.ProductDetail) error {
				require.Len(t, details, 1)
				assert.Equal(t, "SPF", details[0].Name)
				return nil
			})

		p, err := deps.service.CreateProduct(context.Background(), catalog.ProductRequest{
			Name:       "  Sunscreen Gel ",
			CategoryID: strPtr(categoryID.String()),
			Details:    []catalog.ProductDetailRequest{{Name: "SPF", Detail: "50"}},
		})
		require.NoError(t, err)
		assert.Equal(t, "sunscreen-gel-2", p.Slug)
		assert.Equal(t, "Sunscreen Gel", p.Name)
		assert.Equal(t, catalog.StatusActive, p.Status)
		require.Len(t, p.Details, 1)
	})

	t.Run("no parent is a validation error", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.CreateProduct(context.Background(), catalog.ProductRequest{Name: "X"})
		assert.Equal(t, apperror.CodeValidation, apperror.ToHTTP(err).Code)
	})

	t.Run("missing parent", func(t *testing.T) {
		deps := setupServiceTest(t)
		passTx(deps.repo)
		deps.repo.EXPECT().Exists(gomock.Any(), "categories", categoryID).Return(false, nil)

		_, err := deps.service.CreateProduct(context.Background(), catalog.ProductRequest{
			Name:       "X",
			CategoryID: strPtr(categoryID.String()),
		})
		assert.ErrorIs(t, err, catalogerrors.ErrParentNotFound)
	})

	t.Run("blank name", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.CreateProduct(context.Background(), catalog.ProductRequest{
			Name:       "   ",
			CategoryID: strPtr(categoryID.String()),
		})
		assert.Equal(t, 400, apperror.ToHTTP(err).Status)
	})
}

func TestService_DeleteBrand(t *testing.T) {
	deps := setupServiceTest(t)

	assert.ErrorIs(t, deps.service.DeleteBrand(context.Background(), "bad"), catalogerrors.ErrInvalidID)

	id := uuid.New()
	deps.repo.EXPECT().Delete(gomock.Any(), gomock.Any(), id).Return(gorm.ErrRecordNotFound)
	assert.ErrorIs(t, deps.service.DeleteBrand(context.Background(), id.String()), catalogerrors.ErrBrandNotFound)
}

func TestService_SlugsAgainstStore(t *testing.T) {
	db := testdb.Open(t, catalog.Models()...)
	svc := catalog.NewService(catalog.NewRepository(db), nil, catalog.Options{}, zap.NewNop())
	ctx := context.Background()

	brand, err := svc.CreateBrand(ctx, catalog.BrandRequest{Name: "Make Over"})
	require.NoError(t, err)
	assert.Equal(t, "make-over", brand.Slug)

	_, err = svc.CreateBrand(ctx, catalog.BrandRequest{Name: "Make Over"})
	assert.ErrorIs(t, err, catalogerrors.ErrBrandNameTaken)

	lips, err := svc.CreateCategory(ctx, catalog.CategoryRequest{BrandID: brand.ID.String(), Name: "Lips"})
	require.NoError(t, err)
	face, err := svc.CreateCategory(ctx, catalog.CategoryRequest{BrandID: brand.ID.String(), Name: "Face"})
	require.NoError(t, err)

	first, err := svc.CreateProduct(ctx, catalog.ProductRequest{Name: "Matte Cream", CategoryID: strPtr(lips.ID.String())})
	require.NoError(t, err)
	second, err := svc.CreateProduct(ctx, catalog.ProductRequest{Name: "Matte  Cream!", CategoryID: strPtr(lips.ID.String())})
	require.NoError(t, err)
	other, err := svc.CreateProduct(ctx, catalog.ProductRequest{Name: "Matte Cream", CategoryID: strPtr(face.ID.String())})
	require.NoError(t, err)

	assert.Equal(t, "matte-cream", first.Slug)
	assert.Equal(t, "matte-cream-2", second.Slug)
	assert.Equal(t, "matte-cream", other.Slug)

	renamed, err := svc.UpdateProduct(ctx, second.ID.String(), catalog.ProductRequest{
		Name:       "Velvet Cream",
		CategoryID: strPtr(lips.ID.String()),
		Details:    []catalog.ProductDetailRequest{{Name: "Shade", Detail: "Ruby"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "velvet-cream", renamed.Slug)

	resolved, err := svc.ResolveProduct(ctx, "make-over", "lips", []string{"velvet-cream"})
	require.NoError(t, err)
	assert.Equal(t, second.ID, resolved.ID)
	require.Len(t, resolved.Details, 1)

	_, err = svc.ResolveProduct(ctx, "make-over", "face", []string{"velvet-cream"})
	assert.True(t, errors.Is(err, catalogerrors.ErrProductNotFound))
}
