package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/coachpad/matchtime/internal/domain/card"
	"github.com/coachpad/matchtime/internal/domain/goal"
	"github.com/coachpad/matchtime/internal/domain/period"
	"github.com/coachpad/matchtime/internal/domain/roster"
	"github.com/coachpad/matchtime/internal/domain/stoppage"
	"github.com/coachpad/matchtime/internal/domain/substitution"
	"github.com/coachpad/matchtime/internal/platform/logging"
	"github.com/coachpad/matchtime/internal/usecase"
)

type Handler struct {
	statsSvc    *usecase.StatsService
	recorderSvc *usecase.RecorderService
	mergeSvc    *usecase.MergeService
	logger      *logging.Logger
	validator   *validator.Validate
}

func NewHandler(
	statsSvc *usecase.StatsService,
	recorderSvc *usecase.RecorderService,
	mergeSvc *usecase.MergeService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Handler{
		statsSvc:    statsSvc,
		recorderSvc: recorderSvc,
		mergeSvc:    mergeSvc,
		logger:      logger,
		validator:   validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	reports, err := h.statsSvc.ListReports(ctx, reportOptions(r))
	if err != nil {
		h.logger.Error(ctx, "list match reports", "error", err)
		writeError(w, err)
		return
	}

	out := make([]matchSummaryResponse, 0, len(reports))
	for _, report := range reports {
		out = append(out, matchSummaryResponse{
			MatchID:          report.MatchID,
			HomeTeam:         report.HomeTeam,
			AwayTeam:         report.AwayTeam,
			HomeGoals:        report.HomeGoals,
			AwayGoals:        report.AwayGoals,
			Finished:         report.Finished,
			TotalSeconds:     report.TotalSeconds,
			EffectiveSeconds: report.EffectiveSeconds,
		})
	}
	writeSuccess(w, http.StatusOK, out)
}

func (h *Handler) GetMatchReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchReport")
	defer span.End()

	report, err := h.statsSvc.Report(ctx, r.PathValue("matchID"), reportOptions(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, toReportResponse(report))
}

func (h *Handler) ListPlayerPlayingTimes(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerPlayingTimes")
	defer span.End()

	rows, err := h.statsSvc.PlayerPlayingTimes(ctx, r.PathValue("matchID"), reportOptions(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, toPlayingTimeResponses(rows))
}

func (h *Handler) ListStoppageBreakdown(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStoppageBreakdown")
	defer span.End()

	rows, err := h.statsSvc.StoppageBreakdown(ctx, r.PathValue("matchID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, toStoppageRowResponses(rows))
}

type rosterEntryPayload struct {
	PlayerID    string `json:"playerId" validate:"required"`
	PlayerName  string `json:"playerName" validate:"required"`
	ShirtNumber int    `json:"shirtNumber" validate:"gt=0"`
	Position    string `json:"position" validate:"required,oneof=GK DEF MID FWD"`
	Status      string `json:"status" validate:"required,oneof=TITULAIRE REMPLACANT"`
}

type createMatchRequest struct {
	HomeTeam  string               `json:"homeTeam" validate:"required"`
	AwayTeam  string               `json:"awayTeam" validate:"required"`
	KickoffAt time.Time            `json:"kickoffAt"`
	Roster    []rosterEntryPayload `json:"roster" validate:"dive"`
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	var payload createMatchRequest
	if !h.decode(w, r, &payload) {
		return
	}

	entries := make([]roster.Entry, 0, len(payload.Roster))
	for _, p := range payload.Roster {
		entries = append(entries, roster.Entry{
			PlayerID:    p.PlayerID,
			PlayerName:  p.PlayerName,
			ShirtNumber: p.ShirtNumber,
			Position:    roster.Position(p.Position),
			Status:      roster.Status(p.Status),
		})
	}

	m, err := h.recorderSvc.CreateMatch(ctx, usecase.CreateMatchInput{
		HomeTeam:  payload.HomeTeam,
		AwayTeam:  payload.AwayTeam,
		KickoffAt: payload.KickoffAt,
		Roster:    entries,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, map[string]string{"matchId": m.ID})
}

func (h *Handler) StartPeriod(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StartPeriod")
	defer span.End()

	p, err := period.Parse(r.PathValue("period"))
	if err != nil {
		writeError(w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	if _, err := h.recorderSvc.StartPeriod(ctx, r.PathValue("matchID"), p); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]string{"period": string(p), "state": string(period.StateRunning)})
}

type endPeriodRequest struct {
	ObservedSeconds int `json:"observedSeconds" validate:"gte=0"`
}

func (h *Handler) EndPeriod(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.EndPeriod")
	defer span.End()

	p, err := period.Parse(r.PathValue("period"))
	if err != nil {
		writeError(w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	var payload endPeriodRequest
	if !h.decode(w, r, &payload) {
		return
	}

	if _, err := h.recorderSvc.EndPeriod(ctx, r.PathValue("matchID"), p, payload.ObservedSeconds); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]string{"period": string(p), "state": string(period.StateEnded)})
}

type stoppagePayload struct {
	ID              string `json:"id"`
	Period          string `json:"period" validate:"required,oneof=1H 2H ET1 ET2"`
	Type            string `json:"type" validate:"required,oneof=INJURY SUBSTITUTION VAR MISCONDUCT OTHER"`
	Beneficiary     string `json:"beneficiaryTeam" validate:"omitempty,oneof=HOME AWAY"`
	StartSecond     int    `json:"startSecond"`
	DurationSeconds int    `json:"durationSeconds"`
}

func (p stoppagePayload) toEvent() stoppage.Event {
	return stoppage.Event{
		ID:              p.ID,
		Period:          period.Period(p.Period),
		Type:            stoppage.Type(p.Type),
		Beneficiary:     stoppage.Team(p.Beneficiary),
		StartSecond:     p.StartSecond,
		DurationSeconds: p.DurationSeconds,
	}
}

func (h *Handler) AppendStoppage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AppendStoppage")
	defer span.End()

	var payload stoppagePayload
	if !h.decode(w, r, &payload) {
		return
	}
	payload.ID = ""

	if _, err := h.recorderSvc.AppendStoppage(ctx, r.PathValue("matchID"), payload.toEvent()); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, map[string]string{"status": "recorded"})
}

type substitutionPayload struct {
	ID            string `json:"id"`
	Period        string `json:"period" validate:"required,oneof=1H 2H ET1 ET2"`
	Second        int    `json:"second"`
	PlayerOutID   string `json:"playerOutId"`
	PlayerOutName string `json:"playerOutName"`
	PlayerInID    string `json:"playerInId"`
	PlayerInName  string `json:"playerInName"`
}

func (p substitutionPayload) toEvent() substitution.Event {
	return substitution.Event{
		ID:            p.ID,
		Period:        period.Period(p.Period),
		Second:        p.Second,
		PlayerOutID:   p.PlayerOutID,
		PlayerOutName: p.PlayerOutName,
		PlayerInID:    p.PlayerInID,
		PlayerInName:  p.PlayerInName,
	}
}

func (h *Handler) AppendSubstitution(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AppendSubstitution")
	defer span.End()

	var payload substitutionPayload
	if !h.decode(w, r, &payload) {
		return
	}
	payload.ID = ""

	if _, err := h.recorderSvc.AppendSubstitution(ctx, r.PathValue("matchID"), payload.toEvent()); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, map[string]string{"status": "recorded"})
}

type cardPayload struct {
	ID         string `json:"id"`
	Period     string `json:"period" validate:"required,oneof=1H 2H ET1 ET2"`
	Second     int    `json:"second"`
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName" validate:"required"`
	Type       string `json:"type" validate:"required,oneof=YELLOW SECOND_YELLOW RED WHITE"`
	Served     bool   `json:"isServed"`
}

func (p cardPayload) toEvent() card.Event {
	return card.Event{
		ID:         p.ID,
		Period:     period.Period(p.Period),
		Second:     p.Second,
		PlayerID:   p.PlayerID,
		PlayerName: p.PlayerName,
		Type:       card.Type(p.Type),
		Served:     p.Served,
	}
}

func (h *Handler) RecordCard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordCard")
	defer span.End()

	var payload cardPayload
	if !h.decode(w, r, &payload) {
		return
	}
	payload.ID = ""

	if _, err := h.recorderSvc.RecordCard(ctx, r.PathValue("matchID"), payload.toEvent()); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, map[string]string{"status": "recorded"})
}

func (h *Handler) ServeCard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ServeCard")
	defer span.End()

	if _, err := h.recorderSvc.ServeCard(ctx, r.PathValue("matchID"), r.PathValue("cardID")); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]string{"status": "served"})
}

type goalPayload struct {
	ID         string `json:"id"`
	Period     string `json:"period" validate:"required,oneof=1H 2H ET1 ET2"`
	Second     int    `json:"second"`
	IsHome     bool   `json:"isHome"`
	PlayerName string `json:"playerName"`
}

func (p goalPayload) toEvent() goal.Event {
	return goal.Event{
		ID:         p.ID,
		Period:     period.Period(p.Period),
		Second:     p.Second,
		IsHome:     p.IsHome,
		PlayerName: p.PlayerName,
	}
}

func (h *Handler) RecordGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordGoal")
	defer span.End()

	var payload goalPayload
	if !h.decode(w, r, &payload) {
		return
	}
	payload.ID = ""

	if _, err := h.recorderSvc.RecordGoal(ctx, r.PathValue("matchID"), payload.toEvent()); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, map[string]string{"status": "recorded"})
}

type finishMatchRequest struct {
	ObservedSeconds int `json:"observedSeconds" validate:"gte=0"`
}

func (h *Handler) FinishMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FinishMatch")
	defer span.End()

	var payload finishMatchRequest
	if !h.decode(w, r, &payload) {
		return
	}

	if _, err := h.recorderSvc.FinishMatch(ctx, r.PathValue("matchID"), payload.ObservedSeconds); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]string{"status": "finished"})
}

type mergeRequest struct {
	Stoppages     []stoppagePayload     `json:"stoppages" validate:"dive"`
	Substitutions []substitutionPayload `json:"substitutions" validate:"dive"`
	Cards         []cardPayload         `json:"cards" validate:"dive"`
	Goals         []goalPayload         `json:"goals" validate:"dive"`
}

func (h *Handler) MergeEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MergeEvents")
	defer span.End()

	var payload mergeRequest
	if !h.decode(w, r, &payload) {
		return
	}

	input := usecase.MergeInput{}
	for _, p := range payload.Stoppages {
		input.Stoppages = append(input.Stoppages, p.toEvent())
	}
	for _, p := range payload.Substitutions {
		input.Substitutions = append(input.Substitutions, p.toEvent())
	}
	for _, p := range payload.Cards {
		input.Cards = append(input.Cards, p.toEvent())
	}
	for _, p := range payload.Goals {
		input.Goals = append(input.Goals, p.toEvent())
	}

	result, err := h.mergeSvc.MergeEvents(ctx, r.PathValue("matchID"), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]int{
		"appended": result.Appended,
		"skipped":  result.Skipped,
	})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, payload any) bool {
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(payload); err != nil {
		writeError(w, fmt.Errorf("%w: decode request body: %v", usecase.ErrInvalidInput, err))
		return false
	}
	if err := h.validator.StructCtx(r.Context(), payload); err != nil {
		writeError(w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return false
	}
	return true
}

// reportOptions reads the live clock and table filter query params.
// elapsed is the running period's elapsed seconds supplied by the live
// caller; it is never stored server-side.
func reportOptions(r *http.Request) usecase.ReportOptions {
	opts := usecase.ReportOptions{}
	if raw := strings.TrimSpace(r.URL.Query().Get("elapsed")); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			opts.LiveElapsedSeconds = v
		}
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("played")); raw != "" {
		opts.PlayedOnly = raw == "1" || strings.EqualFold(raw, "true")
	}
	return opts
}
