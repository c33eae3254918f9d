package agent

import (
	"context"
	"strings"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/cache"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=agent_repo.go -destination=mock/agent_repo_mock.go -package=mock
type Repository interface {
	FindByID(ctx context.Context, id string) (*Agent, error)
	List(ctx context.Context, filter AgentFilter) ([]Agent, error)
	Create(ctx context.Context, a *Agent) error
	Save(ctx context.Context, a *Agent) error
	// UpsertIdentity inserts the agent or refreshes its email on conflict.
	UpsertIdentity(ctx context.Context, a *Agent) error
	UpdatePhoto(ctx context.Context, id, url string) error
	Delete(ctx context.Context, id string) error

	ListPerformance(ctx context.Context, agentID string) ([]PerformanceRecord, error)
	AveragePerformance(ctx context.Context, agentID string) (Averages, error)
	FindPerformanceByID(ctx context.Context, id uuid.UUID) (*PerformanceRecord, error)
	CreatePerformance(ctx context.Context, rec *PerformanceRecord) error
	SavePerformance(ctx context.Context, rec *PerformanceRecord) error
	DeletePerformance(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, id string) (*Agent, error) {
	var a Agent
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) List(ctx context.Context, filter AgentFilter) ([]Agent, error) {
	q := r.db.WithContext(ctx).Model(&Agent{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Active != nil {
		q = q.Where("active = ?", *filter.Active)
	}
	if term := strings.ToLower(strings.TrimSpace(filter.Q)); term != "" {
		like := "%" + term + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	var agents []Agent
	err := q.Order("name ASC").Find(&agents).Error
	return agents, err
}

func (r *repository) Create(ctx context.Context, a *Agent) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) Save(ctx context.Context, a *Agent) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(a).Error
}

func (r *repository) UpsertIdentity(ctx context.Context, a *Agent) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "updated_at"}),
		}).
		Create(a).Error
}

func (r *repository) UpdatePhoto(ctx context.Context, id, url string) error {
	res := r.db.WithContext(ctx).Model(&Agent{}).Where("id = ?", id).Update("photo_url", url)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return cache.Transaction(ctx, r.db, func(tx *gorm.DB) error {
		if err := tx.Where("agent_id = ?", id).Delete(&PerformanceRecord{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&Agent{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *repository) ListPerformance(ctx context.Context, agentID string) ([]PerformanceRecord, error) {
	var records []PerformanceRecord
	err := r.db.WithContext(ctx).
		Where("agent_id = ?", agentID).
		Order("recorded_at DESC").
		Find(&records).Error
	return records, err
}

func (r *repository) AveragePerformance(ctx context.Context, agentID string) (Averages, error) {
	var avg Averages
	err := r.db.WithContext(ctx).Model(&PerformanceRecord{}).
		Select(`COALESCE(AVG(qa_score), 0) AS qa_score,
			COALESCE(AVG(quiz_score), 0) AS quiz_score,
			COALESCE(AVG(typing_test_score), 0) AS typing_test_score,
			COALESCE(AVG(afrt), 0) AS afrt,
			COALESCE(AVG(art), 0) AS art,
			COALESCE(AVG(rt), 0) AS rt,
			COALESCE(AVG(rr), 0) AS rr,
			COALESCE(AVG(csat), 0) AS csat,
			COUNT(*) AS count`).
		Where("agent_id = ?", agentID).
		Scan(&avg).Error
	return avg, err
}

func (r *repository) FindPerformanceByID(ctx context.Context, id uuid.UUID) (*PerformanceRecord, error) {
	var rec PerformanceRecord
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) CreatePerformance(ctx context.Context, rec *PerformanceRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) SavePerformance(ctx context.Context, rec *PerformanceRecord) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *repository) DeletePerformance(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&PerformanceRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
