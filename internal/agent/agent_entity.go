package agent

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CategoryInbound  = "inbound"
	CategoryOutbound = "outbound"
	CategoryLive     = "live-chat"
)

// Agent is the local profile of an identity provider user; ID is the
// provider's user id.
type Agent struct {
	ID          string              `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name        string              `gorm:"not null" json:"name"`
	Email       string              `gorm:"not null;uniqueIndex:uq_agent_email" json:"email"`
	Category    string              `gorm:"type:varchar(50);index" json:"category"`
	Active      bool                `gorm:"not null" json:"active"`
	PhotoURL    *string             `json:"photoUrl,omitempty"`
	NIP         *string             `gorm:"column:nip" json:"nip,omitempty"`
	TL          *string             `gorm:"column:tl" json:"tl,omitempty"`
	QA          *string             `gorm:"column:qa" json:"qa,omitempty"`
	Performance []PerformanceRecord `gorm:"foreignKey:AgentID;constraint:OnDelete:CASCADE" json:"performance,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

type PerformanceRecord struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AgentID               string    `gorm:"type:varchar(64);not null;index" json:"agentId"`
	QAScore               float64   `json:"qaScore"`
	QAScoreRemark         *string   `json:"qaScoreRemark,omitempty"`
	QuizScore             float64   `json:"quizScore"`
	QuizScoreRemark       *string   `json:"quizScoreRemark,omitempty"`
	TypingTestScore       float64   `json:"typingTestScore"`
	TypingTestScoreRemark *string   `json:"typingTestScoreRemark,omitempty"`
	AFRT                  float64   `gorm:"column:afrt" json:"afrt"`
	AFRTRemark            *string   `gorm:"column:afrt_remark" json:"afrtRemark,omitempty"`
	ART                   float64   `gorm:"column:art" json:"art"`
	ARTRemark             *string   `gorm:"column:art_remark" json:"artRemark,omitempty"`
	RT                    float64   `gorm:"column:rt" json:"rt"`
	RTRemark              *string   `gorm:"column:rt_remark" json:"rtRemark,omitempty"`
	RR                    float64   `gorm:"column:rr" json:"rr"`
	RRRemark              *string   `gorm:"column:rr_remark" json:"rrRemark,omitempty"`
	CSAT                  float64   `gorm:"column:csat" json:"csat"`
	CSATRemark            *string   `gorm:"column:csat_remark" json:"csatRemark,omitempty"`
	RecordedAt            time.Time `gorm:"not null;index" json:"recordedAt"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

func (r *PerformanceRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.RecordedAt.IsZero() {
		r.RecordedAt = time.Now()
	}
	return nil
}

// Averages holds the mean of every metric over an agent's records.
type Averages struct {
	QAScore         float64 `json:"qaScore"`
	QuizScore       float64 `json:"quizScore"`
	TypingTestScore float64 `json:"typingTestScore"`
	AFRT            float64 `json:"afrt"`
	ART             float64 `json:"art"`
	RT              float64 `json:"rt"`
	RR              float64 `json:"rr"`
	CSAT            float64 `json:"csat"`
	Count           int64   `json:"count"`
}

type PerformanceSummary struct {
	Agent    *Agent              `json:"agent"`
	Records  []PerformanceRecord `json:"records"`
	Averages Averages            `json:"averages"`
}

func Models() []any {
	return []any{&Agent{}, &PerformanceRecord{}}
}
