package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatchDetail)
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}/roster", handler.GetTeamRoster)
	mux.HandleFunc("GET /v1/teams/{teamID}/stats", handler.GetTeamSeasonStats)
}

func registerImportRoutes(mux *http.ServeMux, handler *Handler, importToken string) {
	mux.Handle("POST /v1/matches/{matchID}/import", RequireImportToken(importToken, http.HandlerFunc(handler.ImportMatchStats)))
	mux.Handle("POST /v1/matches/{matchID}/import/ea", RequireImportToken(importToken, http.HandlerFunc(handler.ImportMatchStatsFromEA)))
	mux.Handle("POST /v1/admin/recalc-team-stats", RequireImportToken(importToken, http.HandlerFunc(handler.RecalcTeamStats)))
}
