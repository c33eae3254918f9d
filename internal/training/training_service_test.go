package training_test

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/apperror"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/testdb"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/training"
	trainingerrors "github.com/ccparagoncorp/customercare-web-sub001/internal/training/errors"
	trainingMock "github.com/ccparagoncorp/customercare-web-sub001/internal/training/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestService_TreeRoundTrip(t *testing.T) {
	db := testdb.Open(t, training.Models()...)
	svc := training.NewService(training.NewRepository(db), nil, training.Options{}, zap.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, training.TrainingRequest{
		Title: "Greeting Standard",
		Variants: []training.VariantRequest{{
			Name: "Chat",
			Details: []training.DetailRequest{{
				Name:       "Opening",
				Subdetails: []training.SubdetailRequest{{Name: "Say hello"}, {Name: "Introduce yourself"}},
			}},
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, "greeting-standard", created.Slug)

	got, err := svc.GetBySlug(ctx, "GREETING-STANDARD")
	require.NoError(t, err)
	require.Len(t, got.Variants, 1)
	require.Len(t, got.Variants[0].Details, 1)
	subs := got.Variants[0].Details[0].Subdetails
	require.Len(t, subs, 2)
	assert.ElementsMatch(t, []string{"Say hello", "Introduce yourself"}, []string{subs[0].Name, subs[1].Name})

	updated, err := svc.Update(ctx, created.ID.String(), training.TrainingRequest{
		Title:    "Greeting Standard",
		Variants: []training.VariantRequest{{Name: "Call"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "greeting-standard", updated.Slug)

	got, err = svc.GetBySlug(ctx, "greeting-standard")
	require.NoError(t, err)
	require.Len(t, got.Variants, 1)
	assert.Equal(t, "Call", got.Variants[0].Name)
	assert.Empty(t, got.Variants[0].Details)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, created.ID.String()))
	_, err = svc.GetBySlug(ctx, "greeting-standard")
	assert.ErrorIs(t, err, trainingerrors.ErrTrainingNotFound)
}

func TestService_ListUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := trainingMock.NewMockRepository(ctrl)
	svc := training.NewService(repo, nil, training.Options{}, zap.NewNop())

	repo.EXPECT().List(gomock.Any()).
		Return(nil, &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")})

	_, err := svc.List(context.Background())
	assert.Equal(t, 503, apperror.ToHTTP(err).Status)
}

func TestService_CreateRequiresTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := training.NewService(trainingMock.NewMockRepository(ctrl), nil, training.Options{}, zap.NewNop())

	_, err := svc.Create(context.Background(), training.TrainingRequest{Title: "   "})
	httpErr := apperror.ToHTTP(err)
	assert.Equal(t, 400, httpErr.Status)
	assert.Equal(t, apperror.CodeValidation, httpErr.Code)
}
