package agent

import "time"

type ProfileRequest struct {
	Name            string  `json:"name" binding:"required,max=200"`
	NIP             *string `json:"nip" binding:"omitempty,max=50"`
	TL              *string `json:"tl" binding:"omitempty,max=200"`
	QA              *string `json:"qa" binding:"omitempty,max=200"`
	CurrentPassword string  `json:"currentPassword"`
	NewPassword     string  `json:"newPassword" binding:"omitempty,min=8,max=128"`
}

type AgentRequest struct {
	ID       string  `json:"id" binding:"required,max=64"`
	Name     string  `json:"name" binding:"required,max=200"`
	Email    string  `json:"email" binding:"required,email"`
	Category string  `json:"category" binding:"omitempty,max=50"`
	Active   *bool   `json:"active"`
	NIP      *string `json:"nip" binding:"omitempty,max=50"`
	TL       *string `json:"tl" binding:"omitempty,max=200"`
	QA       *string `json:"qa" binding:"omitempty,max=200"`
}

type AgentFilter struct {
	Category string `form:"category"`
	Active   *bool  `form:"active"`
	Q        string `form:"q"`
}

type PerformanceRequest struct {
	QAScore               float64    `json:"qaScore" binding:"gte=0"`
	QAScoreRemark         *string    `json:"qaScoreRemark"`
	QuizScore             float64    `json:"quizScore" binding:"gte=0"`
	QuizScoreRemark       *string    `json:"quizScoreRemark"`
	TypingTestScore       float64    `json:"typingTestScore" binding:"gte=0"`
	TypingTestScoreRemark *string    `json:"typingTestScoreRemark"`
	AFRT                  float64    `json:"afrt" binding:"gte=0"`
	AFRTRemark            *string    `json:"afrtRemark"`
	ART                   float64    `json:"art" binding:"gte=0"`
	ARTRemark             *string    `json:"artRemark"`
	RT                    float64    `json:"rt" binding:"gte=0"`
	RTRemark              *string    `json:"rtRemark"`
	RR                    float64    `json:"rr" binding:"gte=0"`
	RRRemark              *string    `json:"rrRemark"`
	CSAT                  float64    `json:"csat" binding:"gte=0"`
	CSATRemark            *string    `json:"csatRemark"`
	RecordedAt            *time.Time `json:"recordedAt"`
}

func (r PerformanceRequest) apply(rec *PerformanceRecord) {
	rec.QAScore, rec.QAScoreRemark = r.QAScore, r.QAScoreRemark
	rec.QuizScore, rec.QuizScoreRemark = r.QuizScore, r.QuizScoreRemark
	rec.TypingTestScore, rec.TypingTestScoreRemark = r.TypingTestScore, r.TypingTestScoreRemark
	rec.AFRT, rec.AFRTRemark = r.AFRT, r.AFRTRemark
	rec.ART, rec.ARTRemark = r.ART, r.ARTRemark
	rec.RT, rec.RTRemark = r.RT, r.RTRemark
	rec.RR, rec.RRRemark = r.RR, r.RRRemark
	rec.CSAT, rec.CSATRemark = r.CSAT, r.CSATRemark
	if r.RecordedAt != nil {
		rec.RecordedAt = *r.RecordedAt
	}
}
