// Package services implements the persistence layer of the research
// orchestrator: the session store and the append-only action audit log,
// both backed by ent.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/quantforge/strategist/ent"
	"github.com/quantforge/strategist/ent/researchsession"
)

// interruptedMessage is recorded on sessions orphaned by an ungraceful
// shutdown.
const interruptedMessage = "session interrupted by service restart"

// legalTransitions enumerates the phase state machine. Transitions to
// complete are handled by Complete and are legal from every active phase.
var legalTransitions = map[researchsession.Phase][]researchsession.Phase{
	researchsession.PhaseDesigning:   {researchsession.PhaseDesigned},
	researchsession.PhaseDesigned:    {researchsession.PhaseTraining},
	researchsession.PhaseTraining:    {researchsession.PhaseBacktesting},
	researchsession.PhaseBacktesting: {researchsession.PhaseAssessing},
}

// SessionService manages research session lifecycle.
type SessionService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewSessionService creates a new SessionService.
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{
		client: client,
		logger: slog.Default().With("component", "services.session"),
	}
}

// CreateSession starts a new research cycle in the designing phase.
func (s *SessionService) CreateSession(ctx context.Context) (*ent.ResearchSession, error) {
	session, err := s.client.ResearchSession.Create().
		SetPhase(researchsession.PhaseDesigning).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	s.logger.Info("Created research session", "session_id", session.ID)
	return session, nil
}

// GetActiveSession returns the session currently in a non-terminal,
// non-idle phase, or nil if no cycle is running. The single-active-session
// invariant makes "oldest first" a tie-break that should never matter.
func (s *SessionService) GetActiveSession(ctx context.Context) (*ent.ResearchSession, error) {
	session, err := s.client.ResearchSession.Query().
		Where(researchsession.PhaseNotIn(researchsession.PhaseIdle, researchsession.PhaseComplete)).
		Order(ent.Asc(researchsession.FieldCreatedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query active session: %w", err)
	}
	return session, nil
}

// GetSession loads a session by id.
func (s *SessionService) GetSession(ctx context.Context, id int) (*ent.ResearchSession, error) {
	session, err := s.client.ResearchSession.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session %d: %w", id, err)
	}
	return session, nil
}

// ListSessions returns sessions newest first.
func (s *SessionService) ListSessions(ctx context.Context, limit, offset int) ([]*ent.ResearchSession, error) {
	if limit <= 0 {
		limit = 50
	}
	sessions, err := s.client.ResearchSession.Query().
		Order(ent.Desc(researchsession.FieldCreatedAt), ent.Desc(researchsession.FieldID)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// TransitionPhase moves a session from one active phase to the next. The
// write is conditional on the current phase, so a stale caller fails
// instead of clobbering a concurrent transition.
func (s *SessionService) TransitionPhase(ctx context.Context, id int, from, to researchsession.Phase) (*ent.ResearchSession, error) {
	if !transitionAllowed(from, to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
	}

	update := s.client.ResearchSession.Update().
		Where(researchsession.ID(id), researchsession.PhaseEQ(from)).
		SetPhase(to)
	// operation_id is only meaningful while an external job runs; leaving
	// backtesting ends the last one.
	if from == researchsession.PhaseBacktesting {
		update.ClearOperationID()
	}

	n, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to transition session %d: %w", id, err)
	}
	if n == 0 {
		return nil, s.transitionConflict(ctx, id, from, to)
	}

	s.logger.Info("Session phase transition", "session_id", id, "from", from, "to", to)
	return s.GetSession(ctx, id)
}

// StartExternalJob stores the external operation id and advances the phase
// in one write. Used for designed->training and training->backtesting.
func (s *SessionService) StartExternalJob(ctx context.Context, id int, from, to researchsession.Phase, operationID string) (*ent.ResearchSession, error) {
	if !transitionAllowed(from, to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
	}

	n, err := s.client.ResearchSession.Update().
		Where(researchsession.ID(id), researchsession.PhaseEQ(from)).
		SetPhase(to).
		SetOperationID(operationID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start external job on session %d: %w", id, err)
	}
	if n == 0 {
		return nil, s.transitionConflict(ctx, id, from, to)
	}

	s.logger.Info("Session phase transition", "session_id", id, "from", from, "to", to, "operation_id", operationID)
	return s.GetSession(ctx, id)
}

// MarkDesigned records the saved strategy and moves designing -> designed.
// Called by the design worker; the reconciler owns every other transition.
func (s *SessionService) MarkDesigned(ctx context.Context, id int, strategyName string) (*ent.ResearchSession, error) {
	n, err := s.client.ResearchSession.Update().
		Where(researchsession.ID(id), researchsession.PhaseEQ(researchsession.PhaseDesigning)).
		SetPhase(researchsession.PhaseDesigned).
		SetStrategyName(strategyName).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark session %d designed: %w", id, err)
	}
	if n == 0 {
		return nil, s.transitionConflict(ctx, id, researchsession.PhaseDesigning, researchsession.PhaseDesigned)
	}

	s.logger.Info("Session designed", "session_id", id, "strategy", strategyName)
	return s.GetSession(ctx, id)
}

// CompletionInput carries everything a terminal transition records.
type CompletionInput struct {
	Outcome           researchsession.Outcome
	ErrorMessage      string
	AssessmentText    string
	AssessmentMetrics map[string]interface{}
}

// Complete terminates a session: phase complete, outcome set, operation id
// cleared. Legal from every active phase. Completing an already-terminal
// session is a conflict, not a no-op.
func (s *SessionService) Complete(ctx context.Context, id int, in CompletionInput) (*ent.ResearchSession, error) {
	update := s.client.ResearchSession.Update().
		Where(
			researchsession.ID(id),
			researchsession.PhaseNotIn(researchsession.PhaseIdle, researchsession.PhaseComplete),
		).
		SetPhase(researchsession.PhaseComplete).
		SetOutcome(in.Outcome).
		ClearOperationID()

	if in.ErrorMessage != "" {
		update.SetErrorMessage(in.ErrorMessage)
	}
	if in.AssessmentText != "" {
		update.SetAssessmentText(in.AssessmentText)
	}
	if in.AssessmentMetrics != nil {
		update.SetAssessmentMetrics(in.AssessmentMetrics)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to complete session %d: %w", id, err)
	}
	if n == 0 {
		return nil, s.transitionConflict(ctx, id, "", researchsession.PhaseComplete)
	}

	s.logger.Info("Session completed", "session_id", id, "outcome", in.Outcome)
	return s.GetSession(ctx, id)
}

// RecoverOrphanedSessions terminates every session left in an active phase
// by an ungraceful shutdown. Returns the number of sessions recovered.
func (s *SessionService) RecoverOrphanedSessions(ctx context.Context) (int, error) {
	n, err := s.client.ResearchSession.Update().
		Where(researchsession.PhaseNotIn(researchsession.PhaseIdle, researchsession.PhaseComplete)).
		SetPhase(researchsession.PhaseComplete).
		SetOutcome(researchsession.OutcomeFailedInterrupted).
		SetErrorMessage(interruptedMessage).
		ClearOperationID().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to recover orphaned sessions: %w", err)
	}
	if n > 0 {
		s.logger.Warn("Recovered orphaned sessions", "count", n)
	}
	return n, nil
}

func transitionAllowed(from, to researchsession.Phase) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// transitionConflict builds a descriptive error for a conditional update
// that matched no rows.
func (s *SessionService) transitionConflict(ctx context.Context, id int, from, to researchsession.Phase) error {
	current, err := s.client.ResearchSession.Get(ctx, id)
	if ent.IsNotFound(err) {
		return fmt.Errorf("session %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to inspect session %d after conflict: %w", id, err)
	}
	if from != "" {
		return fmt.Errorf("%w: session %d is %s, expected %s (target %s)",
			ErrIllegalTransition, id, current.Phase, from, to)
	}
	return fmt.Errorf("%w: session %d is %s, cannot transition to %s",
		ErrIllegalTransition, id, current.Phase, to)
}
