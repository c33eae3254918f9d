package agent_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/agent"
	agenterrors "github.com/ccparagoncorp/customercare-web-sub001/internal/agent/errors"
	agentMock "github.com/ccparagoncorp/customercare-web-sub001/internal/agent/mock"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/identity"
	identityMock "github.com/ccparagoncorp/customercare-web-sub001/internal/identity/mock"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/apperror"
	storageMock "github.com/ccparagoncorp/customercare-web-sub001/internal/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type deps struct {
	repo     *agentMock.MockRepository
	provider *identityMock.MockProvider
	images   *storageMock.MockImageUploader
	svc      agent.Service
}

func newDeps(t *testing.T) deps {
	ctrl := gomock.NewController(t)
	d := deps{
		repo:     agentMock.NewMockRepository(ctrl),
		provider: identityMock.NewMockProvider(ctrl),
		images:   storageMock.NewMockImageUploader(ctrl),
	}
	d.svc = agent.NewService(d.repo, d.provider, d.images, zap.NewNop())
	return d
}

func pngBytes(t *testing.T) []byte {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	return buf.Bytes()
}

// pngHeader is a PNG signature plus a single IHDR chunk declaring w x h RGBA.
func pngHeader(w, h uint32) []byte {
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:], w)
	binary.BigEndian.PutUint32(ihdr[4:], h)
	ihdr[8], ihdr[9] = 8, 6
	chunk := append([]byte("IHDR"), ihdr...)

	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")
	_ = binary.Write(&buf, binary.BigEndian, uint32(len(ihdr)))
	buf.Write(chunk)
	_ = binary.Write(&buf, binary.BigEndian, crc32.ChecksumIEEE(chunk))
	return buf.Bytes()
}

func TestService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("profile only", func(t *testing.T) {
		d := newDeps(t)
		nip := "9001"
		d.repo.EXPECT().FindByID(gomock.Any(), "u-1").Return(&agent.Agent{ID: "u-1", Name: "old", Email: "budi@cc.id"}, nil)
		d.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		a, err := d.svc.UpdateProfile(ctx, "u-1", agent.ProfileRequest{Name: " Budi ", NIP: &nip})
		require.NoError(t, err)
		assert.Equal(t, "Budi", a.Name)
		assert.Equal(t, "9001", *a.NIP)
	})

	t.Run("new password needs current", func(t *testing.T) {
		d := newDeps(t)
		_, err := d.svc.UpdateProfile(ctx, "u-1", agent.ProfileRequest{Name: "Budi", NewPassword: "rahasia123"})
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, 400, httpErr.Status)
	})

	t.Run("wrong current password", func(t *testing.T) {
		d := newDeps(t)
		d.repo.EXPECT().FindByID(gomock.Any(), "u-1").Return(&agent.Agent{ID: "u-1", Email: "budi@cc.id"}, nil)
		d.provider.EXPECT().Login(gomock.Any(), "budi@cc.id", "salah").Return(nil, identity.ErrInvalidCredentials)

		_, err := d.svc.UpdateProfile(ctx, "u-1", agent.ProfileRequest{Name: "Budi", CurrentPassword: "salah", NewPassword: "rahasia123"})
		assert.ErrorIs(t, err, agenterrors.ErrWrongPassword)
	})

	t.Run("password changed", func(t *testing.T) {
		d := newDeps(t)
		d.repo.EXPECT().FindByID(gomock.Any(), "u-1").Return(&agent.Agent{ID: "u-1", Email: "budi@cc.id"}, nil)
		d.provider.EXPECT().Login(gomock.Any(), "budi@cc.id", "lama1234").Return(&identity.Token{AccessToken: "t"}, nil)
		d.provider.EXPECT().SetPassword(gomock.Any(), "u-1", "baru12345").Return(nil)
		d.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		_, err := d.svc.UpdateProfile(ctx, "u-1", agent.ProfileRequest{Name: "Budi", CurrentPassword: "lama1234", NewPassword: "baru12345"})
		assert.NoError(t, err)
	})

	t.Run("unknown agent", func(t *testing.T) {
		d := newDeps(t)
		d.repo.EXPECT().FindByID(gomock.Any(), "u-9").Return(nil, gorm.ErrRecordNotFound)
		_, err := d.svc.UpdateProfile(ctx, "u-9", agent.ProfileRequest{Name: "x"})
		assert.ErrorIs(t, err, agenterrors.ErrAgentNotFound)
	})
}

func TestService_UploadPhoto(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		d := newDeps(t)
		data := pngBytes(t)
		d.repo.EXPECT().FindByID(gomock.Any(), "u-1").Return(&agent.Agent{ID: "u-1"}, nil)
		d.images.EXPECT().UploadImage(gomock.Any(), "agents/u-1", data, "image/png").Return("https://cdn/agents/u-1/a.webp", nil)
		d.repo.EXPECT().UpdatePhoto(gomock.Any(), "u-1", "https://cdn/agents/u-1/a.webp").Return(nil)

		a, err := d.svc.UploadPhoto(ctx, "u-1", bytes.NewReader(data))
		require.NoError(t, err)
		require.NotNil(t, a.PhotoURL)
		assert.Equal(t, "https://cdn/agents/u-1/a.webp", *a.PhotoURL)
	})

	t.Run("too large", func(t *testing.T) {
		d := newDeps(t)
		big := bytes.Repeat([]byte{0}, agent.MaxPhotoSize+1)
		_, err := d.svc.UploadPhoto(ctx, "u-1", bytes.NewReader(big))
		assert.ErrorIs(t, err, agenterrors.ErrPhotoTooLarge)
	})

	t.Run("not an image", func(t *testing.T) {
		d := newDeps(t)
		_, err := d.svc.UploadPhoto(ctx, "u-1", strings.NewReader("%PDF-1.4 hello"))
		assert.ErrorIs(t, err, agenterrors.ErrPhotoType)
	})

	t.Run("oversized dimensions", func(t *testing.T) {
		d := newDeps(t)
		_, err := d.svc.UploadPhoto(ctx, "u-1", bytes.NewReader(pngHeader(16000, 16000)))
		assert.ErrorIs(t, err, agenterrors.ErrPhotoDimensions)
		assert.Equal(t, 400, apperror.ToHTTP(err).Status)
	})

	t.Run("broken header", func(t *testing.T) {
		d := newDeps(t)
		data := append([]byte("\x89PNG\r\n\x1a\n"), "garbage"...)
		_, err := d.svc.UploadPhoto(ctx, "u-1", bytes.NewReader(data))
		assert.ErrorIs(t, err, agenterrors.ErrPhotoType)
	})

	t.Run("empty", func(t *testing.T) {
		d := newDeps(t)
		_, err := d.svc.UploadPhoto(ctx, "u-1", strings.NewReader(""))
		assert.ErrorIs(t, err, agenterrors.ErrPhotoMissing)
	})

	t.Run("storage down", func(t *testing.T) {
		d := newDeps(t)
		d.repo.EXPECT().FindByID(gomock.Any(), "u-1").Return(&agent.Agent{ID: "u-1"}, nil)
		d.images.EXPECT().UploadImage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("oss timeout"))

		_, err := d.svc.UploadPhoto(ctx, "u-1", bytes.NewReader(pngBytes(t)))
		assert.Equal(t, 503, apperror.ToHTTP(err).Status)
	})
}

func TestService_SyncIdentity(t *testing.T) {
	d := newDeps(t)
	d.repo.EXPECT().UpsertIdentity(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, a *agent.Agent) error {
		assert.Equal(t, "budi", a.Name)
		assert.True(t, a.Active)
		return nil
	})
	d.repo.EXPECT().FindByID(gomock.Any(), "u-1").Return(&agent.Agent{ID: "u-1", Name: "budi"}, nil)

	a, err := d.svc.SyncIdentity(context.Background(), identity.UserInfo{UserID: "u-1", Email: "budi@cc.id"})
	require.NoError(t, err)
	assert.Equal(t, "u-1", a.ID)
}

func TestService_GetPerformance(t *testing.T) {
	d := newDeps(t)
	d.repo.EXPECT().FindByID(gomock.Any(), "u-1").Return(&agent.Agent{ID: "u-1"}, nil)
	d.repo.EXPECT().ListPerformance(gomock.Any(), "u-1").Return(nil, nil)
	d.repo.EXPECT().AveragePerformance(gomock.Any(), "u-1").Return(agent.Averages{}, nil)

	summary, err := d.svc.GetPerformance(context.Background(), "u-1")
	require.NoError(t, err)
	assert.NotNil(t, summary.Records)
	assert.Empty(t, summary.Records)
}

func TestService_CreateAgentEmailTaken(t *testing.T) {
	db := openDB(t)
	svc := agent.NewService(agent.NewRepository(db), nil, nil, zap.NewNop())
	ctx := context.Background()

	_, err := svc.CreateAgent(ctx, agent.AgentRequest{ID: "u-1", Name: "Budi", Email: "Budi@CC.id"})
	require.NoError(t, err)

	_, err = svc.CreateAgent(ctx, agent.AgentRequest{ID: "u-2", Name: "Budi 2", Email: "budi@cc.id"})
	assert.ErrorIs(t, err, agenterrors.ErrEmailTaken)
}

func TestService_PerformanceIDs(t *testing.T) {
	d := newDeps(t)
	ctx := context.Background()

	_, err := d.svc.UpdatePerformance(ctx, "nope", agent.PerformanceRequest{})
	assert.ErrorIs(t, err, agenterrors.ErrInvalidID)

	id := uuid.New()
	d.repo.EXPECT().DeletePerformance(gomock.Any(), id).Return(gorm.ErrRecordNotFound)
	assert.ErrorIs(t, d.svc.DeletePerformance(ctx, id.String()), agenterrors.ErrPerformanceNotFound)

	d.repo.EXPECT().FindByID(gomock.Any(), "u-1").Return(nil, gorm.ErrRecordNotFound)
	_, err = d.svc.CreatePerformance(ctx, "u-1", agent.PerformanceRequest{QAScore: 90})
	assert.ErrorIs(t, err, agenterrors.ErrAgentNotFound)
}
