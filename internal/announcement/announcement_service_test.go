package announcement_test

import (
	"context"
	"testing"
	"time"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/announcement"
	announcementerrors "github.com/ccparagoncorp/customercare-web-sub001/internal/announcement/errors"
	announcementMock "github.com/ccparagoncorp/customercare-web-sub001/internal/announcement/mock"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/contextutil"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestRepository_ListNewestFirst(t *testing.T) {
	db := testdb.Open(t, &announcement.Announcement{})
	repo := announcement.NewRepository(db)
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, repo.Create(ctx, &announcement.Announcement{Title: "old", CreatedAt: now.Add(-2 * time.Hour)}))
	require.NoError(t, repo.Create(ctx, &announcement.Announcement{Title: "new", CreatedAt: now}))
	require.NoError(t, repo.Create(ctx, &announcement.Announcement{Title: "mid", CreatedAt: now.Add(-time.Hour)}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"new", "mid", "old"}, []string{list[0].Title, list[1].Title, list[2].Title})
}

func TestService_CreateAndUpdateAudit(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := announcementMock.NewMockRepository(ctrl)
	svc := announcement.NewService(repo, nil, 0, zap.NewNop())

	ctx := contextutil.WithUserID(context.Background(), "admin-1")
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, a *announcement.Announcement) error {
		a.ID = uuid.New()
		return nil
	})

	created, err := svc.Create(ctx, announcement.AnnouncementRequest{Title: " Maintenance ", Description: "Sunday"})
	require.NoError(t, err)
	assert.Equal(t, "Maintenance", created.Title)
	assert.Equal(t, "admin-1", created.CreatedBy)

	repo.EXPECT().FindByID(gomock.Any(), created.ID).Return(created, nil)
	repo.EXPECT().Save(gomock.Any(), created).Return(nil)

	editor := contextutil.WithUserID(context.Background(), "admin-2")
	updated, err := svc.Update(editor, created.ID.String(), announcement.AnnouncementRequest{Title: "Maintenance v2", Description: "Monday"})
	require.NoError(t, err)
	assert.Equal(t, "admin-1", updated.CreatedBy)
	assert.Equal(t, "admin-2", updated.UpdatedBy)
}

func TestService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := announcementMock.NewMockRepository(ctrl)
	svc := announcement.NewService(repo, nil, 0, zap.NewNop())

	_, err := svc.GetByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, announcementerrors.ErrInvalidID)

	id := uuid.New()
	repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)
	_, err = svc.GetByID(context.Background(), id.String())
	assert.ErrorIs(t, err, announcementerrors.ErrAnnouncementNotFound)
}
