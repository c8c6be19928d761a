package httpapi

import (
	"github.com/coachpad/matchtime/internal/domain/substitution"
	"github.com/coachpad/matchtime/internal/usecase"
)

type matchSummaryResponse struct {
	MatchID          string `json:"matchId"`
	HomeTeam         string `json:"homeTeam"`
	AwayTeam         string `json:"awayTeam"`
	HomeGoals        int    `json:"homeGoals"`
	AwayGoals        int    `json:"awayGoals"`
	Finished         bool   `json:"isFinished"`
	TotalSeconds     int    `json:"totalSeconds"`
	EffectiveSeconds int    `json:"effectiveSeconds"`
}

type periodRowResponse struct {
	Period                string `json:"period"`
	State                 string `json:"state"`
	RegulationSeconds     int    `json:"regulationSeconds"`
	ObservedSeconds       int    `json:"observedSeconds"`
	StoppageSeconds       int    `json:"stoppageSeconds"`
	EffectiveSeconds      int    `json:"effectiveSeconds"`
	SuggestedAddedMinutes int    `json:"suggestedAddedMinutes"`
}

type stoppageRowResponse struct {
	Type         string `json:"type"`
	Count        int    `json:"count"`
	HomeCount    int    `json:"homeCount"`
	AwayCount    int    `json:"awayCount"`
	TotalSeconds int    `json:"totalSeconds"`
}

type cardTallyResponse struct {
	Yellow       int `json:"yellow"`
	SecondYellow int `json:"secondYellow"`
	Red          int `json:"red"`
	White        int `json:"white"`
}

type playingTimeResponse struct {
	PlayerID         string `json:"playerId"`
	PlayerName       string `json:"playerName"`
	ShirtNumber      int    `json:"shirtNumber"`
	Position         string `json:"position"`
	IsStarter        bool   `json:"isStarter"`
	TotalSeconds     int    `json:"totalSeconds"`
	EffectiveSeconds int    `json:"effectiveSeconds"`
}

type reportResponse struct {
	MatchID          string                `json:"matchId"`
	HomeTeam         string                `json:"homeTeam"`
	AwayTeam         string                `json:"awayTeam"`
	Finished         bool                  `json:"isFinished"`
	HomeGoals        int                   `json:"homeGoals"`
	AwayGoals        int                   `json:"awayGoals"`
	TotalSeconds     int                   `json:"totalSeconds"`
	EffectiveSeconds int                   `json:"effectiveSeconds"`
	StoppageSeconds  int                   `json:"stoppageSeconds"`
	EffectivePercent float64               `json:"effectivePercent"`
	Periods          []periodRowResponse   `json:"periods"`
	Stoppages        []stoppageRowResponse `json:"stoppages"`
	Cards            cardTallyResponse     `json:"cards"`
	Players          []playingTimeResponse `json:"players"`
}

func toReportResponse(report usecase.MatchReport) reportResponse {
	out := reportResponse{
		MatchID:          report.MatchID,
		HomeTeam:         report.HomeTeam,
		AwayTeam:         report.AwayTeam,
		Finished:         report.Finished,
		HomeGoals:        report.HomeGoals,
		AwayGoals:        report.AwayGoals,
		TotalSeconds:     report.TotalSeconds,
		EffectiveSeconds: report.EffectiveSeconds,
		StoppageSeconds:  report.StoppageSeconds,
		EffectivePercent: report.EffectivePercent,
		Stoppages:        toStoppageRowResponses(report.Stoppages),
		Cards: cardTallyResponse{
			Yellow:       report.Cards.Yellow,
			SecondYellow: report.Cards.SecondYellow,
			Red:          report.Cards.Red,
			White:        report.Cards.White,
		},
		Players: toPlayingTimeResponses(report.Players),
	}
	out.Periods = make([]periodRowResponse, 0, len(report.Periods))
	for _, row := range report.Periods {
		out.Periods = append(out.Periods, periodRowResponse{
			Period:                string(row.Period),
			State:                 string(row.State),
			RegulationSeconds:     row.RegulationSeconds,
			ObservedSeconds:       row.ObservedSeconds,
			StoppageSeconds:       row.StoppageSeconds,
			EffectiveSeconds:      row.EffectiveSeconds,
			SuggestedAddedMinutes: row.SuggestedAddedMinutes,
		})
	}
	return out
}

func toStoppageRowResponses(rows []usecase.StoppageBreakdownRow) []stoppageRowResponse {
	out := make([]stoppageRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, stoppageRowResponse{
			Type:         string(row.Type),
			Count:        row.Count,
			HomeCount:    row.HomeCount,
			AwayCount:    row.AwayCount,
			TotalSeconds: row.TotalSeconds,
		})
	}
	return out
}

func toPlayingTimeResponses(rows []substitution.PlayingTime) []playingTimeResponse {
	out := make([]playingTimeResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, playingTimeResponse{
			PlayerID:         row.PlayerID,
			PlayerName:       row.PlayerName,
			ShirtNumber:      row.ShirtNumber,
			Position:         string(row.Position),
			IsStarter:        row.IsStarter,
			TotalSeconds:     row.TotalSeconds,
			EffectiveSeconds: row.EffectiveSeconds,
		})
	}
	return out
}
