package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Dravita/internal/assessment"
	"github.com/MikeSquared-Agency/Dravita/internal/events"
)

type AssessmentsHandler struct {
	notifier *events.Notifier
	delay    time.Duration
	logger   *slog.Logger
}

func NewAssessmentsHandler(n *events.Notifier, delay time.Duration, logger *slog.Logger) *AssessmentsHandler {
	return &AssessmentsHandler{notifier: n, delay: delay, logger: logger}
}

type AssessmentResponse struct {
	AssessmentID string `json:"assessment_id"`
	assessment.Result
}

type ScoreResponse struct {
	RiskScore   int                     `json:"risk_score"`
	RiskLevel   assessment.RiskLevel    `json:"risk_level"`
	Adjustments []assessment.Adjustment `json:"adjustments"`
}

// Create scores the answers and ranks plans. Multi-select answers are
// normalized first, so a selection of "None" plus other options is scored on
// the other options.
func (h *AssessmentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in assessment.Input
	if err := decodeBody(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	in.Normalize()

	if err := wait(r.Context(), h.delay); err != nil {
		h.logger.Info("assessment abandoned", "error", err)
		return
	}

	res := assessment.Assess(&in)
	id := uuid.New().String()
	observeAssessment(&res)

	planIDs := make([]int, 0, len(res.Recommendations))
	for _, rec := range res.Recommendations {
		planIDs = append(planIDs, rec.ID)
	}
	h.notifier.AssessmentCompleted(events.AssessmentCompletedEvent{
		AssessmentID: id,
		RiskScore:    res.RiskScore,
		RiskLevel:    string(res.RiskLevel),
		PlanIDs:      planIDs,
		ComputedAt:   time.Now().UTC(),
	})

	h.logger.Debug("assessment completed",
		"assessment_id", id,
		"risk_score", res.RiskScore,
		"risk_level", res.RiskLevel,
	)
	writeJSON(w, http.StatusOK, AssessmentResponse{AssessmentID: id, Result: res})
}

// Score returns the score and its breakdown without ranking plans or
// waiting out the analysis delay. Selections are normalized as in Create.
func (h *AssessmentsHandler) Score(w http.ResponseWriter, r *http.Request) {
	var in assessment.Input
	if err := decodeBody(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	in.Normalize()

	score, adjustments := assessment.Breakdown(&in)
	writeJSON(w, http.StatusOK, ScoreResponse{
		RiskScore:   score,
		RiskLevel:   assessment.LevelFor(score),
		Adjustments: adjustments,
	})
}

// wait blocks for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
