package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/chelstats/chelstats/internal/domain/match"
	"github.com/chelstats/chelstats/internal/domain/player"
	"github.com/chelstats/chelstats/internal/domain/playerstats"
	"github.com/chelstats/chelstats/internal/domain/rawdata"
	"github.com/chelstats/chelstats/internal/domain/team"
	"github.com/chelstats/chelstats/internal/domain/teamstats"
	"github.com/chelstats/chelstats/internal/ea"
	"github.com/chelstats/chelstats/internal/platform/logging"
)

// MigrationPath is returned with partial-failure responses so operators know
// where the schema files live when stat-line inserts fail on a stale database.
const MigrationPath = "migrations/"

const statInsertHint = "apply pending schema files under " + MigrationPath + " and retry the import"

const rawPayloadSource = "ea"

// ImportRequest carries one match payload into the import pipeline. RawJSON,
// when present, is archived verbatim; otherwise the payload is re-encoded.
type ImportRequest struct {
	MatchID   string
	EAMatchID string
	Manual    bool
	Payload   *ea.MatchPayload
	RawJSON   []byte
}

// ImportResult reports what the pipeline persisted. StatError is non-nil when
// the match score was updated but some stat lines were not stored; the score
// update is never rolled back in that case.
type ImportResult struct {
	MatchID       string
	HomeScore     int
	AwayScore     int
	IsCombined    bool
	InsertedLines int
	FailedLines   int
	Warnings      []string
	StatError     error
}

func (r ImportResult) Partial() bool {
	return r.StatError != nil
}

// Announcement is the score line pushed to chat after a successful import.
type Announcement struct {
	MatchID    string
	HomeTeam   string
	AwayTeam   string
	HomeScore  int
	AwayScore  int
	IsCombined bool
}

// ImportAnnouncer publishes final scores once an import fully succeeds.
type ImportAnnouncer interface {
	AnnounceImport(ctx context.Context, item Announcement) error
}

// EAMatchSource lists recent club matches from the EA proxy.
type EAMatchSource interface {
	RecentClubMatches(ctx context.Context, eaClubID string) ([]ea.ClubMatch, error)
}

type ImportService struct {
	matchRepo       match.Repository
	teamRepo        team.Repository
	playerStatsRepo playerstats.Repository
	teamStatsRepo   teamstats.Repository
	rawDataRepo     rawdata.Repository
	playerRepo      player.Repository
	eaMatches       EAMatchSource
	announcer       ImportAnnouncer
	logger          *logging.Logger
	batchSize       int
	now             func() time.Time
}

func NewImportService(
	matchRepo match.Repository,
	teamRepo team.Repository,
	playerStatsRepo playerstats.Repository,
	teamStatsRepo teamstats.Repository,
	rawDataRepo rawdata.Repository,
	playerRepo player.Repository,
	eaMatches EAMatchSource,
	announcer ImportAnnouncer,
	batchSize int,
	logger *logging.Logger,
) *ImportService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ImportService{
		matchRepo:       matchRepo,
		teamRepo:        teamRepo,
		playerStatsRepo: playerStatsRepo,
		teamStatsRepo:   teamStatsRepo,
		rawDataRepo:     rawDataRepo,
		playerRepo:      playerRepo,
		eaMatches:       eaMatches,
		announcer:       announcer,
		logger:          logger,
		batchSize:       batchSize,
		now:             time.Now,
	}
}

// Import runs the pipeline for one payload: resolve match and teams, extract
// scores, update the match, archive the raw payload, replace player stat
// lines, then rebuild team lines and the roster. Everything after the score
// update follows partial-failure semantics: stat-line errors are reported but
// never roll the score back, and the trailing steps are best-effort.
func (s *ImportService) Import(ctx context.Context, req ImportRequest) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.Import")
	defer span.End()

	req.MatchID = strings.TrimSpace(req.MatchID)
	req.EAMatchID = strings.TrimSpace(req.EAMatchID)
	if req.MatchID == "" {
		return ImportResult{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if req.Payload == nil {
		return ImportResult{}, fmt.Errorf("%w: ea match data is required", ErrInvalidInput)
	}

	m, found, err := s.matchRepo.GetByID(ctx, req.MatchID)
	if err != nil {
		return ImportResult{}, fmt.Errorf("get match: %w", err)
	}
	if !found {
		return ImportResult{}, fmt.Errorf("%w: match %s", ErrNotFound, req.MatchID)
	}

	home, away, err := s.resolveTeams(ctx, m)
	if err != nil {
		return ImportResult{}, err
	}

	isCombined := req.Payload.Combined || match.IsCombinedEAMatchID(req.EAMatchID)
	if isCombined {
		s.logger.InfoContext(ctx, "importing combined match totals",
			"match_id", m.ID, "ea_match_id", req.EAMatchID)
	}

	scores := ea.ExtractScores(req.Payload, req.Manual, home.EAClubID, away.EAClubID)
	for _, warning := range scores.Warnings {
		s.logger.WarnContext(ctx, "score extraction degraded", "match_id", m.ID, "detail", warning)
	}

	update := match.ScoreUpdate{
		HomeScore:    scores.Home,
		AwayScore:    scores.Away,
		PeriodScores: scores.Periods,
		Status:       match.StatusCompleted,
		EAMatchID:    req.EAMatchID,
		IsCombined:   isCombined,
	}
	if err := s.matchRepo.UpdateScore(ctx, m.ID, update); err != nil {
		return ImportResult{}, fmt.Errorf("update match score: %w", err)
	}

	s.archivePayload(ctx, m, req)

	homeLines := ea.NormalizeClubPlayers(req.Payload, m.ID, home.ID, home.EAClubID)
	awayLines := ea.NormalizeClubPlayers(req.Payload, m.ID, away.ID, away.EAClubID)
	lines := make([]playerstats.StatLine, 0, len(homeLines)+len(awayLines))
	lines = append(lines, homeLines...)
	lines = append(lines, awayLines...)

	result := ImportResult{
		MatchID:    m.ID,
		HomeScore:  scores.Home,
		AwayScore:  scores.Away,
		IsCombined: isCombined,
		Warnings:   scores.Warnings,
	}

	outcome, err := s.playerStatsRepo.ReplaceForMatch(ctx, m.ID, lines, s.batchSize)
	if err != nil {
		s.logger.ErrorContext(ctx, "player stat lines not replaced", "match_id", m.ID, "error", err)
		result.FailedLines = len(lines)
		result.StatError = crerr.WithHint(err, statInsertHint)
		return result, nil
	}
	result.InsertedLines = outcome.Inserted
	result.FailedLines = outcome.FailedLines
	for _, batchErr := range outcome.BatchErrors {
		s.logger.ErrorContext(ctx, "player stat batch failed", "match_id", m.ID, "error", batchErr)
	}
	if first := outcome.FirstError(); first != nil {
		result.StatError = crerr.WithHint(first, statInsertHint)
	}

	teamLines := []teamstats.StatLine{
		ea.AggregateTeam(m.ID, home.ID, clubFor(req.Payload, home.EAClubID), homeLines),
		ea.AggregateTeam(m.ID, away.ID, clubFor(req.Payload, away.EAClubID), awayLines),
	}
	if err := s.teamStatsRepo.ReplaceForMatch(ctx, m.ID, teamLines); err != nil {
		s.logger.ErrorContext(ctx, "team stat lines not replaced", "match_id", m.ID, "error", err)
	}

	s.upsertRoster(ctx, home.ID, homeLines)
	s.upsertRoster(ctx, away.ID, awayLines)
	s.announce(ctx, home, away, result)

	return result, nil
}

// ImportFromEA pulls the match payload from the EA proxy and runs the normal
// import. When the match already carries an EA match id that exact game is
// required; otherwise the club's most recent game is taken.
func (s *ImportService) ImportFromEA(ctx context.Context, matchID string) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportFromEA")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return ImportResult{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if s.eaMatches == nil {
		return ImportResult{}, fmt.Errorf("%w: ea match source is not configured", ErrDependencyUnavailable)
	}

	m, found, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return ImportResult{}, fmt.Errorf("get match: %w", err)
	}
	if !found {
		return ImportResult{}, fmt.Errorf("%w: match %s", ErrNotFound, matchID)
	}

	home, _, err := s.resolveTeams(ctx, m)
	if err != nil {
		return ImportResult{}, err
	}
	if home.EAClubID == "" {
		return ImportResult{}, fmt.Errorf("%w: team %s has no ea club linkage", ErrInvalidInput, home.ID)
	}

	games, err := s.eaMatches.RecentClubMatches(ctx, home.EAClubID)
	if err != nil {
		return ImportResult{}, fmt.Errorf("%w: fetch recent matches for club %s: %v", ErrDependencyUnavailable, home.EAClubID, err)
	}
	if len(games) == 0 {
		return ImportResult{}, fmt.Errorf("%w: no recent ea matches for club %s", ErrNotFound, home.EAClubID)
	}

	picked := games[0]
	if m.EAMatchID != "" {
		matched := false
		for _, game := range games {
			if game.MatchID == m.EAMatchID {
				picked = game
				matched = true
				break
			}
		}
		if !matched {
			return ImportResult{}, fmt.Errorf("%w: ea match %s not among recent games for club %s", ErrNotFound, m.EAMatchID, home.EAClubID)
		}
	}

	payload := picked.Payload()
	return s.Import(ctx, ImportRequest{
		MatchID:   m.ID,
		EAMatchID: picked.MatchID,
		Payload:   &payload,
	})
}

func (s *ImportService) resolveTeams(ctx context.Context, m match.Match) (team.Team, team.Team, error) {
	home, found, err := s.teamRepo.GetByID(ctx, m.HomeTeamID)
	if err != nil {
		return team.Team{}, team.Team{}, fmt.Errorf("get home team: %w", err)
	}
	if !found {
		return team.Team{}, team.Team{}, fmt.Errorf("home team %s not found for match %s", m.HomeTeamID, m.ID)
	}

	away, found, err := s.teamRepo.GetByID(ctx, m.AwayTeamID)
	if err != nil {
		return team.Team{}, team.Team{}, fmt.Errorf("get away team: %w", err)
	}
	if !found {
		return team.Team{}, team.Team{}, fmt.Errorf("away team %s not found for match %s", m.AwayTeamID, m.ID)
	}
	return home, away, nil
}

func (s *ImportService) archivePayload(ctx context.Context, m match.Match, req ImportRequest) {
	raw := req.RawJSON
	if len(raw) == 0 {
		encoded, err := sonic.Marshal(req.Payload)
		if err != nil {
			s.logger.WarnContext(ctx, "raw payload not archived", "match_id", m.ID, "error", err)
			return
		}
		raw = encoded
	}

	key := req.EAMatchID
	if key == "" {
		key = m.ID
	}
	item := rawdata.Payload{
		Source:      rawPayloadSource,
		EntityType:  "match",
		EntityKey:   key,
		MatchID:     m.ID,
		EAMatchID:   req.EAMatchID,
		PayloadJSON: string(raw),
		PayloadHash: rawdata.HashPayload(string(raw)),
	}
	if err := s.rawDataRepo.Upsert(ctx, item); err != nil {
		s.logger.WarnContext(ctx, "raw payload not archived", "match_id", m.ID, "error", err)
	}
}

func (s *ImportService) upsertRoster(ctx context.Context, teamID string, lines []playerstats.StatLine) {
	if len(lines) == 0 {
		return
	}

	seenAt := s.now().UTC()
	roster := make([]player.Player, 0, len(lines))
	for _, line := range lines {
		if line.EAPlayerID == "" {
			continue
		}
		roster = append(roster, player.Player{
			TeamID:     teamID,
			EAPlayerID: line.EAPlayerID,
			Name:       line.PlayerName,
			Position:   string(line.Position),
			LastSeenAt: seenAt,
		})
	}
	if err := s.playerRepo.UpsertMany(ctx, roster); err != nil {
		s.logger.WarnContext(ctx, "roster not refreshed", "team_id", teamID, "error", err)
	}
}

func (s *ImportService) announce(ctx context.Context, home, away team.Team, result ImportResult) {
	if s.announcer == nil || result.Partial() {
		return
	}

	item := Announcement{
		MatchID:    result.MatchID,
		HomeTeam:   home.Name,
		AwayTeam:   away.Name,
		HomeScore:  result.HomeScore,
		AwayScore:  result.AwayScore,
		IsCombined: result.IsCombined,
	}
	if err := s.announcer.AnnounceImport(ctx, item); err != nil {
		s.logger.WarnContext(ctx, "import announcement failed", "match_id", result.MatchID, "error", err)
	}
}

func clubFor(payload *ea.MatchPayload, eaClubID string) *ea.Club {
	if club, ok := payload.Clubs[eaClubID]; ok {
		return &club
	}
	return nil
}
