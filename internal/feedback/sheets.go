package feedback

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	feedbackerrors "github.com/ccparagoncorp/customercare-web-sub001/internal/feedback/errors"

	"go.uber.org/zap"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const googleTokenURL = "https://oauth2.googleapis.com/token"

var (
	defaultHeader = []any{"Timestamp", "Email", "Nama", "Judul", "Rating", "Feedback", "Source"}
	agentHeader   = []any{"Timestamp", "Email", "Nama", "Role", "Pesan", "Form"}
)

//go:generate mockgen -source=sheets.go -destination=mock/sheets_mock.go -package=mock
// ValuesAPI is the slice of the Sheets values resource the recorder needs.
type ValuesAPI interface {
	Get(ctx context.Context, spreadsheetID, rng string) ([][]any, error)
	Update(ctx context.Context, spreadsheetID, rng string, rows [][]any) error
	Append(ctx context.Context, spreadsheetID, rng string, rows [][]any) error
}

type SheetTarget struct {
	SpreadsheetID string
	SheetName     string
}

func (t SheetTarget) configured() bool {
	return t.SpreadsheetID != ""
}

func (t SheetTarget) rng(cells string) string {
	name := t.SheetName
	if name == "" {
		name = "Sheet1"
	}
	return "'" + strings.ReplaceAll(name, "'", "''") + "'!" + cells
}

type Recorder interface {
	Record(ctx context.Context, sub Submission) error
}

// SheetRecorder writes improvement-form rows to the agent sheet and every
// other source to the default sheet. Each target may use its own API client.
type SheetRecorder struct {
	defaultAPI   ValuesAPI
	defaultSheet SheetTarget
	agentAPI     ValuesAPI
	agentSheet   SheetTarget
	logger       *zap.Logger
}

func NewSheetRecorder(defaultAPI ValuesAPI, defaultSheet SheetTarget, agentAPI ValuesAPI, agentSheet SheetTarget, logger ...*zap.Logger) *SheetRecorder {
	l := zap.L().Named("feedback.sheets")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("feedback.sheets")
	}
	return &SheetRecorder{
		defaultAPI:   defaultAPI,
		defaultSheet: defaultSheet,
		agentAPI:     agentAPI,
		agentSheet:   agentSheet,
		logger:       l,
	}
}

func (r *SheetRecorder) Record(ctx context.Context, sub Submission) error {
	api, target, header, row := r.defaultAPI, r.defaultSheet, defaultHeader, DefaultRow(sub)
	if sub.Source == SourceImprovementForm {
		api, target, header, row = r.agentAPI, r.agentSheet, agentHeader, AgentRow(sub)
	}
	if api == nil || !target.configured() {
		return feedbackerrors.ErrSheetNotConfigured
	}
	return writeRow(ctx, api, target, header, row)
}

// writeRow makes sure row 1 is the header, then fills row 2 if it is still
// blank and appends otherwise.
func writeRow(ctx context.Context, api ValuesAPI, target SheetTarget, header, row []any) error {
	last := columnName(len(header))

	existing, err := api.Get(ctx, target.SpreadsheetID, target.rng("A1:"+last+"1"))
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	if blank(existing) {
		if err := api.Update(ctx, target.SpreadsheetID, target.rng("A1:"+last+"1"), [][]any{header}); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	first, err := api.Get(ctx, target.SpreadsheetID, target.rng("A2:"+last+"2"))
	if err != nil {
		return fmt.Errorf("read first row: %w", err)
	}
	if blank(first) {
		if err := api.Update(ctx, target.SpreadsheetID, target.rng("A2:"+last+"2"), [][]any{row}); err != nil {
			return fmt.Errorf("write first row: %w", err)
		}
		return nil
	}

	if err := api.Append(ctx, target.SpreadsheetID, target.rng("A:"+last), [][]any{row}); err != nil {
		return fmt.Errorf("append row: %w", err)
	}
	return nil
}

func blank(rows [][]any) bool {
	for _, r := range rows {
		for _, cell := range r {
			if strings.TrimSpace(fmt.Sprint(cell)) != "" {
				return false
			}
		}
	}
	return true
}

// columnName handles up to 26 columns, which is all either layout needs.
func columnName(n int) string {
	return string(rune('A' + n - 1))
}

func timestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

// DefaultRow: timestamp, email, name, title, rating, feedback, source.
func DefaultRow(sub Submission) []any {
	rating := ""
	if sub.Rating != nil {
		rating = strconv.Itoa(*sub.Rating)
	}
	return []any{timestamp(sub.SubmittedAt), sub.Email, sub.Name, sub.Subject, rating, sub.Message, sub.Source}
}

// AgentRow: timestamp, email, name, role, message, form.
func AgentRow(sub Submission) []any {
	return []any{timestamp(sub.SubmittedAt), sub.Email, sub.Name, sub.Role, sub.Message, sub.Source}
}

// GoogleValues adapts sheets.Service to ValuesAPI.
type GoogleValues struct {
	values *sheets.SpreadsheetsValuesService
}

type ServiceAccount struct {
	Email      string
	PrivateKey string
}

// NewGoogleValues authenticates with a service account key. Keys pasted
// into env files usually carry literal \n sequences, which are unfolded.
func NewGoogleValues(ctx context.Context, sa ServiceAccount, opts ...option.ClientOption) (*GoogleValues, error) {
	if sa.Email != "" && sa.PrivateKey != "" {
		conf := &jwt.Config{
			Email:      sa.Email,
			PrivateKey: []byte(strings.ReplaceAll(sa.PrivateKey, `\n`, "\n")),
			Scopes:     []string{sheets.SpreadsheetsScope},
			TokenURL:   googleTokenURL,
		}
		opts = append([]option.ClientOption{option.WithHTTPClient(conf.Client(ctx))}, opts...)
	}
	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets client: %w", err)
	}
	return &GoogleValues{values: srv.Spreadsheets.Values}, nil
}

func (g *GoogleValues) Get(ctx context.Context, spreadsheetID, rng string) ([][]any, error) {
	resp, err := g.values.Get(spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Values, nil
}

func (g *GoogleValues) Update(ctx context.Context, spreadsheetID, rng string, rows [][]any) error {
	_, err := g.values.Update(spreadsheetID, rng, &sheets.ValueRange{Values: rows}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	return err
}

func (g *GoogleValues) Append(ctx context.Context, spreadsheetID, rng string, rows [][]any) error {
	_, err := g.values.Append(spreadsheetID, rng, &sheets.ValueRange{Values: rows}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	return err
}
