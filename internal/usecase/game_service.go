package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ThangaBalajiS/party-games/internal/domain/album"
	"github.com/ThangaBalajiS/party-games/internal/domain/player"
	"github.com/ThangaBalajiS/party-games/internal/domain/scoring"
	"github.com/ThangaBalajiS/party-games/internal/domain/team"
	"github.com/ThangaBalajiS/party-games/internal/platform/logging"
)

const guessTheWordMaxRounds = 3

// PopularSongAnswer is one team's ordered three-song guess.
type PopularSongAnswer struct {
	TeamID  string
	SongIDs []string
}

// PopularSongRoundInput scores one album round for any number of teams.
type PopularSongRoundInput struct {
	AlbumID string
	Answers []PopularSongAnswer
}

// PopularSongResult is the per-team outcome of a popular-song round.
type PopularSongResult struct {
	TeamID    string
	Total     int
	Breakdown scoring.SongRankBreakdown
}

// CharadesRoundInput scores one dumb-charades turn.
type CharadesRoundInput struct {
	TeamID         string
	Mode           scoring.CharadesMode
	ElapsedSeconds int
	TimedOut       bool
}

// WordGuessRoundInput scores one guess-the-word turn.
type WordGuessRoundInput struct {
	TeamID         string
	CorrectAnswers int
}

// BeerPongRoundInput scores one player's beer-pong turn.
type BeerPongRoundInput struct {
	TeamID           string
	PlayerID         string
	SuccessfulThrows int
}

// PenFightRoundInput scores one pen-fight round between two sides of three
// slots each.
type PenFightRoundInput struct {
	TeamAID   string
	TeamBID   string
	OutcomesA []scoring.PenFightOutcome
	OutcomesB []scoring.PenFightOutcome
}

// PenFightResult reports the applied deltas per side.
type PenFightResult struct {
	TeamAID string
	TeamBID string
	DeltaA  int
	DeltaB  int
}

// PictionaryRoundInput applies a raw score delta for one pictionary turn.
type PictionaryRoundInput struct {
	TeamID string
	Delta  int
}

// GameRoundResult is the generic applied-round outcome for single-team games.
type GameRoundResult struct {
	Team  team.Team
	Score int
}

type GameService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
	albumRepo  album.Repository
	logger     *logging.Logger
}

func NewGameService(
	teamRepo team.Repository,
	playerRepo player.Repository,
	albumRepo album.Repository,
	logger *logging.Logger,
) *GameService {
	if logger == nil {
		logger = logging.Default()
	}

	return &GameService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		albumRepo:  albumRepo,
		logger:     logger,
	}
}

// ApplyPopularSongRound scores every team's guesses against the album's true
// top three, adds the totals to the running scores and marks the album played.
func (s *GameService) ApplyPopularSongRound(ctx context.Context, input PopularSongRoundInput) ([]PopularSongResult, error) {
	input.AlbumID = strings.TrimSpace(input.AlbumID)
	if input.AlbumID == "" {
		return nil, fmt.Errorf("%w: album id is required", ErrInvalidInput)
	}
	if len(input.Answers) == 0 {
		return nil, fmt.Errorf("%w: at least one team answer is required", ErrInvalidInput)
	}
	for i := range input.Answers {
		input.Answers[i].TeamID = strings.TrimSpace(input.Answers[i].TeamID)
		if input.Answers[i].TeamID == "" {
			return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
		}
		if err := validateSongGuesses(input.Answers[i].SongIDs); err != nil {
			return nil, fmt.Errorf("%w: team=%s: %s", ErrInvalidInput, input.Answers[i].TeamID, err)
		}
	}

	a, exists, err := s.albumRepo.GetByID(ctx, input.AlbumID)
	if err != nil {
		return nil, fmt.Errorf("get album: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: album=%s", ErrNotFound, input.AlbumID)
	}
	if !a.Playable() {
		return nil, fmt.Errorf("%w: album=%s has fewer than 3 songs", ErrConflict, input.AlbumID)
	}
	if a.Played {
		return nil, fmt.Errorf("%w: album=%s was already played", ErrConflict, input.AlbumID)
	}

	topThree := a.TopThree()
	topThreeIDs := make([]string, len(topThree))
	for i, song := range topThree {
		topThreeIDs[i] = song.ID
	}

	results := make([]PopularSongResult, 0, len(input.Answers))
	for _, answer := range input.Answers {
		t, exists, err := s.teamRepo.GetByID(ctx, answer.TeamID)
		if err != nil {
			return nil, fmt.Errorf("get team: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: team=%s", ErrNotFound, answer.TeamID)
		}

		total, breakdown := scoring.SongRankScore(topThreeIDs, answer.SongIDs)
		newScore := t.Score + total
		if _, _, err := s.teamRepo.Update(ctx, t.ID, team.Update{Score: &newScore}); err != nil {
			return nil, fmt.Errorf("apply song score to team=%s: %w", t.ID, err)
		}

		results = append(results, PopularSongResult{TeamID: t.ID, Total: total, Breakdown: breakdown})
	}

	played := true
	if _, _, err := s.albumRepo.Update(ctx, a.ID, album.Update{Played: &played}); err != nil {
		return nil, fmt.Errorf("mark album played: %w", err)
	}

	s.logger.InfoContext(ctx, "popular song round applied", "album_id", a.ID, "team_count", len(results))

	return results, nil
}

// ApplyCharadesRound adds the round score and bumps the charades counter.
// There is no round cap for charades.
func (s *GameService) ApplyCharadesRound(ctx context.Context, input CharadesRoundInput) (GameRoundResult, error) {
	t, err := s.getTeam(ctx, input.TeamID)
	if err != nil {
		return GameRoundResult{}, err
	}
	if input.ElapsedSeconds < 0 {
		return GameRoundResult{}, fmt.Errorf("%w: elapsed seconds cannot be negative", ErrInvalidInput)
	}

	total, err := scoring.CharadesScore(input.Mode, input.ElapsedSeconds, input.TimedOut)
	if err != nil {
		return GameRoundResult{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	newScore := t.Score + total
	rounds := t.DumbCharadesRounds + 1
	updated, exists, err := s.teamRepo.Update(ctx, t.ID, team.Update{Score: &newScore, DumbCharadesRounds: &rounds})
	if err != nil {
		return GameRoundResult{}, fmt.Errorf("apply charades score: %w", err)
	}
	if !exists {
		return GameRoundResult{}, fmt.Errorf("%w: team=%s", ErrNotFound, t.ID)
	}

	s.logger.InfoContext(ctx, "charades round applied", "team_id", t.ID, "score", total, "round", rounds)

	return GameRoundResult{Team: updated, Score: total}, nil
}

// ApplyWordGuessRound adds the round score and bumps the counter. A team is
// capped at three rounds.
func (s *GameService) ApplyWordGuessRound(ctx context.Context, input WordGuessRoundInput) (GameRoundResult, error) {
	if input.CorrectAnswers < 0 || input.CorrectAnswers > 5 {
		return GameRoundResult{}, fmt.Errorf("%w: correct answers must be between 0 and 5", ErrInvalidInput)
	}

	t, err := s.getTeam(ctx, input.TeamID)
	if err != nil {
		return GameRoundResult{}, err
	}
	if t.GuessTheWordRounds >= guessTheWordMaxRounds {
		return GameRoundResult{}, fmt.Errorf("%w: team=%s already played %d rounds", ErrConflict, t.ID, guessTheWordMaxRounds)
	}

	total := scoring.WordGuessScore(input.CorrectAnswers)
	newScore := t.Score + total
	rounds := t.GuessTheWordRounds + 1
	updated, exists, err := s.teamRepo.Update(ctx, t.ID, team.Update{Score: &newScore, GuessTheWordRounds: &rounds})
	if err != nil {
		return GameRoundResult{}, fmt.Errorf("apply word guess score: %w", err)
	}
	if !exists {
		return GameRoundResult{}, fmt.Errorf("%w: team=%s", ErrNotFound, t.ID)
	}

	s.logger.InfoContext(ctx, "word guess round applied", "team_id", t.ID, "score", total, "round", rounds)

	return GameRoundResult{Team: updated, Score: total}, nil
}

// ApplyBeerPongRound scores one player's throws. A player already on the
// team's played list is rejected so the same player cannot score twice in a
// session.
func (s *GameService) ApplyBeerPongRound(ctx context.Context, input BeerPongRoundInput) (GameRoundResult, error) {
	if input.SuccessfulThrows < 0 || input.SuccessfulThrows > 5 {
		return GameRoundResult{}, fmt.Errorf("%w: successful throws must be between 0 and 5", ErrInvalidInput)
	}
	input.PlayerID = strings.TrimSpace(input.PlayerID)
	if input.PlayerID == "" {
		return GameRoundResult{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	t, err := s.getTeam(ctx, input.TeamID)
	if err != nil {
		return GameRoundResult{}, err
	}

	if _, exists, err := s.playerRepo.GetByID(ctx, input.PlayerID); err != nil {
		return GameRoundResult{}, fmt.Errorf("get player: %w", err)
	} else if !exists {
		return GameRoundResult{}, fmt.Errorf("%w: player=%s", ErrNotFound, input.PlayerID)
	}

	if t.HasPlayedBeerPong(input.PlayerID) {
		return GameRoundResult{}, fmt.Errorf("%w: player=%s already scored a beer pong round", ErrConflict, input.PlayerID)
	}

	total := scoring.BeerPongScore(input.SuccessfulThrows)
	newScore := t.Score + total
	beerPongTotal := t.BeerPongTotalScore + total
	rounds := t.BeerPongRounds + 1
	playersPlayed := t.BeerPongPlayersPlayed + 1
	updated, exists, err := s.teamRepo.Update(ctx, t.ID, team.Update{
		Score:                 &newScore,
		BeerPongTotalScore:    &beerPongTotal,
		BeerPongRounds:        &rounds,
		BeerPongPlayersPlayed: &playersPlayed,
		AddBeerPongPlayerID:   &input.PlayerID,
	})
	if err != nil {
		return GameRoundResult{}, fmt.Errorf("apply beer pong score: %w", err)
	}
	if !exists {
		return GameRoundResult{}, fmt.Errorf("%w: team=%s", ErrNotFound, t.ID)
	}

	s.logger.InfoContext(ctx, "beer pong round applied",
		"team_id", t.ID,
		"player_id", input.PlayerID,
		"score", total,
	)

	return GameRoundResult{Team: updated, Score: total}, nil
}

// ApplyPenFightRound settles one round between two sides. Deltas can be
// negative and are applied without clamping.
func (s *GameService) ApplyPenFightRound(ctx context.Context, input PenFightRoundInput) (PenFightResult, error) {
	input.TeamAID = strings.TrimSpace(input.TeamAID)
	input.TeamBID = strings.TrimSpace(input.TeamBID)
	if input.TeamAID == "" || input.TeamBID == "" {
		return PenFightResult{}, fmt.Errorf("%w: both team ids are required", ErrInvalidInput)
	}
	if input.TeamAID == input.TeamBID {
		return PenFightResult{}, fmt.Errorf("%w: a team cannot fight itself", ErrInvalidInput)
	}
	if len(input.OutcomesA) != 3 || len(input.OutcomesB) != 3 {
		return PenFightResult{}, fmt.Errorf("%w: each side needs exactly 3 outcomes", ErrInvalidInput)
	}
	if err := scoring.ValidatePenFightOutcomes(input.OutcomesA); err != nil {
		return PenFightResult{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if err := scoring.ValidatePenFightOutcomes(input.OutcomesB); err != nil {
		return PenFightResult{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	teamA, err := s.getTeam(ctx, input.TeamAID)
	if err != nil {
		return PenFightResult{}, err
	}
	teamB, err := s.getTeam(ctx, input.TeamBID)
	if err != nil {
		return PenFightResult{}, err
	}

	deltaA, deltaB := scoring.PenFightDeltas(input.OutcomesA, input.OutcomesB)

	scoreA := teamA.Score + deltaA
	roundsA := teamA.PenFightRounds + 1
	if _, _, err := s.teamRepo.Update(ctx, teamA.ID, team.Update{Score: &scoreA, PenFightRounds: &roundsA}); err != nil {
		return PenFightResult{}, fmt.Errorf("apply pen fight score to team=%s: %w", teamA.ID, err)
	}

	scoreB := teamB.Score + deltaB
	roundsB := teamB.PenFightRounds + 1
	if _, _, err := s.teamRepo.Update(ctx, teamB.ID, team.Update{Score: &scoreB, PenFightRounds: &roundsB}); err != nil {
		return PenFightResult{}, fmt.Errorf("apply pen fight score to team=%s: %w", teamB.ID, err)
	}

	s.logger.InfoContext(ctx, "pen fight round applied",
		"team_a", teamA.ID,
		"team_b", teamB.ID,
		"delta_a", deltaA,
		"delta_b", deltaB,
	)

	return PenFightResult{TeamAID: teamA.ID, TeamBID: teamB.ID, DeltaA: deltaA, DeltaB: deltaB}, nil
}

// ApplyPictionaryRound adds a raw delta and bumps the pictionary counter.
func (s *GameService) ApplyPictionaryRound(ctx context.Context, input PictionaryRoundInput) (GameRoundResult, error) {
	t, err := s.getTeam(ctx, input.TeamID)
	if err != nil {
		return GameRoundResult{}, err
	}

	newScore := t.Score + input.Delta
	rounds := t.PictionaryRounds + 1
	updated, exists, err := s.teamRepo.Update(ctx, t.ID, team.Update{Score: &newScore, PictionaryRounds: &rounds})
	if err != nil {
		return GameRoundResult{}, fmt.Errorf("apply pictionary score: %w", err)
	}
	if !exists {
		return GameRoundResult{}, fmt.Errorf("%w: team=%s", ErrNotFound, t.ID)
	}

	s.logger.InfoContext(ctx, "pictionary round applied", "team_id", t.ID, "delta", input.Delta)

	return GameRoundResult{Team: updated, Score: input.Delta}, nil
}

// validateSongGuesses requires exactly 3 distinct song ids per answer;
// padded or repeated submissions are rejected before any score is applied.
func validateSongGuesses(songIDs []string) error {
	if len(songIDs) != 3 {
		return fmt.Errorf("exactly 3 song ids are required, got %d", len(songIDs))
	}

	seen := make(map[string]struct{}, len(songIDs))
	for _, id := range songIDs {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("duplicate song id %s", id)
		}
		seen[id] = struct{}{}
	}

	return nil
}

func (s *GameService) getTeam(ctx context.Context, teamID string) (team.Team, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	t, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return t, nil
}
