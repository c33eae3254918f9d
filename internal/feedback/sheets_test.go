package feedback_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/feedback"
	feedbackerrors "github.com/ccparagoncorp/customercare-web-sub001/internal/feedback/errors"
	feedbackMock "github.com/ccparagoncorp/customercare-web-sub001/internal/feedback/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

var submittedAt = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

func TestRows(t *testing.T) {
	rating := 4
	sub := feedback.Submission{
		Source: feedback.SourceFeedbackWidget, Name: "Rina", Email: "rina@mail.com",
		Subject: "Aplikasi", Message: "Mantap", Rating: &rating, SubmittedAt: submittedAt,
	}
	assert.Equal(t, []any{"2024-05-01 09:30:00", "rina@mail.com", "Rina", "Aplikasi", "4", "Mantap", "feedback-widget"}, feedback.DefaultRow(sub))

	sub.Source, sub.Role = feedback.SourceImprovementForm, "Agent"
	assert.Len(t, feedback.AgentRow(sub), 6)
	assert.Equal(t, "Agent", feedback.AgentRow(sub)[3])
}

func TestSheetRecorder_EmptySheetGetsHeaderAndFirstRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := feedbackMock.NewMockValuesAPI(ctrl)
	target := feedback.SheetTarget{SpreadsheetID: "sheet-1", SheetName: "Feedback"}
	rec := feedback.NewSheetRecorder(api, target, nil, feedback.SheetTarget{}, zap.NewNop())

	gomock.InOrder(
		api.EXPECT().Get(gomock.Any(), "sheet-1", "'Feedback'!A1:G1").Return(nil, nil),
		api.EXPECT().Update(gomock.Any(), "sheet-1", "'Feedback'!A1:G1", gomock.Len(1)).Return(nil),
		api.EXPECT().Get(gomock.Any(), "sheet-1", "'Feedback'!A2:G2").Return([][]any{{"", ""}}, nil),
		api.EXPECT().Update(gomock.Any(), "sheet-1", "'Feedback'!A2:G2", gomock.Len(1)).Return(nil),
	)

	err := rec.Record(context.Background(), feedback.Submission{Source: feedback.SourceContactForm, SubmittedAt: submittedAt})
	assert.NoError(t, err)
}

func TestSheetRecorder_AppendsAfterFirstRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := feedbackMock.NewMockValuesAPI(ctrl)
	agentSheet := feedback.SheetTarget{SpreadsheetID: "agent-1"}
	rec := feedback.NewSheetRecorder(nil, feedback.SheetTarget{}, api, agentSheet, zap.NewNop())

	gomock.InOrder(
		api.EXPECT().Get(gomock.Any(), "agent-1", "'Sheet1'!A1:F1").Return([][]any{{"Timestamp"}}, nil),
		api.EXPECT().Get(gomock.Any(), "agent-1", "'Sheet1'!A2:F2").Return([][]any{{"2024-01-01"}}, nil),
		api.EXPECT().Append(gomock.Any(), "agent-1", "'Sheet1'!A:F", gomock.Any()).
			DoAndReturn(func(ctx context.Context, id, rng string, rows [][]any) error {
				require.Len(t, rows, 1)
				assert.Len(t, rows[0], 6)
				return nil
			}),
	)

	err := rec.Record(context.Background(), feedback.Submission{Source: feedback.SourceImprovementForm, Name: "Budi", Message: "x"})
	assert.NoError(t, err)
}

func TestSheetRecorder_NotConfigured(t *testing.T) {
	rec := feedback.NewSheetRecorder(nil, feedback.SheetTarget{}, nil, feedback.SheetTarget{}, zap.NewNop())
	err := rec.Record(context.Background(), feedback.Submission{Source: feedback.SourceContactForm})
	assert.ErrorIs(t, err, feedbackerrors.ErrSheetNotConfigured)
}

func TestGoogleValues(t *testing.T) {
	var appended map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet:
			_, _ = io.WriteString(w, `{"range":"Sheet1!A1:G1","values":[["Timestamp","Email"]]}`)
		case strings.HasSuffix(r.URL.Path, ":append"):
			assert.Equal(t, "INSERT_ROWS", r.URL.Query().Get("insertDataOption"))
			_ = json.NewDecoder(r.Body).Decode(&appended)
			_, _ = io.WriteString(w, `{}`)
		default:
			_, _ = io.WriteString(w, `{}`)
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	gv, err := feedback.NewGoogleValues(ctx, feedback.ServiceAccount{},
		option.WithEndpoint(srv.URL+"/"), option.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	rows, err := gv.Get(ctx, "sheet-1", "Sheet1!A1:G1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Timestamp", rows[0][0])

	require.NoError(t, gv.Append(ctx, "sheet-1", "Sheet1!A:G", [][]any{{"a", "b"}}))
	assert.NotNil(t, appended["values"])
}
