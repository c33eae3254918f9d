package sop_test

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"testing"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/apperror"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/cache"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/sop"
	soperrors "github.com/ccparagoncorp/customercare-web-sub001/internal/sop/errors"
	sopMock "github.com/ccparagoncorp/customercare-web-sub001/internal/sop/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service   sop.Service
	repo      *sopMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	repo := sopMock.NewMockRepository(ctrl)
	rdb, rmock := redismock.NewClientMock()

	svc := sop.NewService(repo, cache.New(rdb, zap.NewNop()), sop.Options{}, zap.NewNop())
	return &serviceDeps{service: svc, repo: repo, redismock: rmock}
}

func passTx(repo *sopMock.MockRepository) {
	repo.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(sop.Repository) error) error {
			return fn(repo)
		})
}

func TestService_ListCategoriesCached(t *testing.T) {
	deps := setupServiceTest(t)
	cached := []sop.Category{{ID: uuid.New(), Name: "Complaint", SOPCount: 3}}
	raw, _ := json.Marshal(cached)
	deps.redismock.ExpectGet(cache.Key("sop-category-list", nil)).SetVal(string(raw))

	got, err := deps.service.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].SOPCount)
	assert.NoError(t, deps.redismock.ExpectationsWereMet())
}

func TestService_ListCategoriesUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := sopMock.NewMockRepository(ctrl)
	svc := sop.NewService(repo, nil, sop.Options{}, zap.NewNop())

	repo.EXPECT().ListCategories(gomock.Any()).
		Return(nil, &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")})

	_, err := svc.ListCategories(context.Background())
	assert.Equal(t, 503, apperror.ToHTTP(err).Status)
}

func TestService_GetSOPNotFound(t *testing.T) {
	deps := setupServiceTest(t)
	deps.repo.EXPECT().FindSOPBySlug(gomock.Any(), "complaint", "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := deps.service.GetSOP(context.Background(), "complaint", "ghost")
	assert.ErrorIs(t, err, soperrors.ErrSOPNotFound)
}

func TestService_CreateVariant(t *testing.T) {
	sopID := uuid.New()

	t.Run("creates variant with ordered steps", func(t *testing.T) {
		deps := setupServiceTest(t)
		passTx(deps.repo)
		deps.repo.EXPECT().Exists(gomock.Any(), "sops", sopID).Return(true, nil)
		deps.repo.EXPECT().UniqueSlug(gomock.Any(), "sop_variants", "marketplace", gomock.Any(), nil).Return("marketplace", nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, v any) error {
			v.(*sop.Variant).ID = uuid.New()
			return nil
		})
		deps.repo.EXPECT().ReplaceSteps(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, id uuid.UUID, steps []sop.Step) error {
				require.Len(t, steps, 2)
				assert.Equal(t, "First", steps[0].Name)
				assert.Equal(t, "Second", steps[1].Name)
				return nil
			})

		got, err := deps.service.CreateVariant(context.Background(), sop.VariantRequest{
			SOPID: sopID.String(),
			Name:  " Marketplace ",
			Steps: []sop.StepRequest{{Name: "First"}, {Name: "Second"}},
		})
		require.NoError(t, err)
		assert.Equal(t, "Marketplace", got.Name)
		assert.Equal(t, "marketplace", got.Slug)
		assert.Len(t, got.Steps, 2)
	})

	t.Run("missing sop", func(t *testing.T) {
		deps := setupServiceTest(t)
		passTx(deps.repo)
		deps.repo.EXPECT().Exists(gomock.Any(), "sops", sopID).Return(false, nil)

		_, err := deps.service.CreateVariant(context.Background(), sop.VariantRequest{SOPID: sopID.String(), Name: "X"})
		assert.ErrorIs(t, err, soperrors.ErrSOPNotFound)
	})

	t.Run("invalid sop id", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.CreateVariant(context.Background(), sop.VariantRequest{SOPID: "x", Name: "X"})
		assert.ErrorIs(t, err, soperrors.ErrInvalidID)
	})
}

func TestService_UpdateVariantReplacesSteps(t *testing.T) {
	deps := setupServiceTest(t)
	variantID, sopID := uuid.New(), uuid.New()
	existing := &sop.Variant{ID: variantID, SOPID: sopID, Name: "Marketplace", Slug: "marketplace"}

	passTx(deps.repo)
	deps.repo.EXPECT().FindVariantByID(gomock.Any(), variantID).Return(existing, nil)
	deps.repo.EXPECT().Save(gomock.Any(), existing).Return(nil)
	deps.repo.EXPECT().ReplaceSteps(gomock.Any(), variantID, gomock.Len(1)).Return(nil)

	got, err := deps.service.UpdateVariant(context.Background(), variantID.String(), sop.VariantRequest{
		SOPID: sopID.String(),
		Name:  "Marketplace",
		Steps: []sop.StepRequest{{Name: "Only"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "marketplace", got.Slug)
	assert.Equal(t, "Only", got.Steps[0].Name)
}

func TestService_SlugsAgainstStore(t *testing.T) {
	db := openDB(t)
	svc := sop.NewService(sop.NewRepository(db), nil, sop.Options{}, zap.NewNop())
	ctx := context.Background()

	category, err := svc.CreateCategory(ctx, sop.CategoryRequest{Name: "Complaint Handling"})
	require.NoError(t, err)
	assert.Equal(t, "complaint-handling", category.Slug)

	first, err := svc.CreateSOP(ctx, sop.SOPRequest{CategoryID: category.ID.String(), Name: "Refund"})
	require.NoError(t, err)
	second, err := svc.CreateSOP(ctx, sop.SOPRequest{CategoryID: category.ID.String(), Name: "Refund!"})
	require.NoError(t, err)
	assert.Equal(t, "refund", first.Slug)
	assert.Equal(t, "refund-2", second.Slug)

	renamed, err := svc.UpdateSOP(ctx, second.ID.String(), sop.SOPRequest{CategoryID: category.ID.String(), Name: "Partial Refund"})
	require.NoError(t, err)
	assert.Equal(t, "partial-refund", renamed.Slug)

	got, err := svc.GetSOP(ctx, "complaint-handling", "partial-refund")
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)
}
