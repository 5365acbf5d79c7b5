package batch

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-matcher/internal/matching"
	"github.com/jonathan/job-matcher/internal/types"
)

// DefaultBatchMinScore is the nightly batch threshold: low-signal pairs are
// computed but not stored.
const DefaultBatchMinScore = 30.0

// defaultConcurrency bounds how many users the global batch scores at once.
const defaultConcurrency = 4

// ResumeSource loads resumes for scoring.
type ResumeSource interface {
	ResumesForUser(ctx context.Context, userID uuid.UUID) ([]types.Resume, error)
	ResumeForUser(ctx context.Context, userID, resumeID uuid.UUID) (*types.Resume, error)
}

// JobSource loads the active job postings in scope for matching.
type JobSource interface {
	ActiveJobs(ctx context.Context) ([]types.JobPosting, error)
	CountActiveJobs(ctx context.Context) (int, error)
}

// PreferenceSource loads a user's matching preferences.
// A (nil, nil) return means the user has not set any.
type PreferenceSource interface {
	PreferencesForUser(ctx context.Context, userID uuid.UUID) (*types.UserPreferences, error)
}

// UserSource enumerates users eligible for the global batch.
type UserSource interface {
	ActiveUserIDs(ctx context.Context) ([]uuid.UUID, error)
}

// MatchStore persists match results with replace-set semantics: one call
// atomically deletes the user's existing rows and inserts the new set.
type MatchStore interface {
	ReplaceUserMatches(ctx context.Context, userID uuid.UUID, matches []types.MatchResult) error
}

// Service computes and stores matches for one user or for all active users.
type Service struct {
	resumes     ResumeSource
	jobs        JobSource
	preferences PreferenceSource
	users       UserSource
	matches     MatchStore
	log         *zap.Logger
	concurrency int

	// Per-user critical section: a recompute interleaved with another
	// recompute for the same user could lose the replace-set guarantee.
	locksMu   sync.Mutex
	userLocks map[uuid.UUID]*sync.Mutex
}

// NewService creates a batch computation service with the default global
// batch concurrency. Use NewServiceWith to set it explicitly.
func NewService(resumes ResumeSource, jobs JobSource, preferences PreferenceSource, users UserSource, matches MatchStore, log *zap.Logger) *Service {
	return NewServiceWith(resumes, jobs, preferences, users, matches, log, defaultConcurrency)
}

// NewServiceWith creates a batch computation service scoring at most
// concurrency users at once during the global batch. Non-positive values
// fall back to the default.
func NewServiceWith(resumes ResumeSource, jobs JobSource, preferences PreferenceSource, users UserSource, matches MatchStore, log *zap.Logger, concurrency int) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &Service{
		resumes:     resumes,
		jobs:        jobs,
		preferences: preferences,
		users:       users,
		matches:     matches,
		log:         log,
		concurrency: concurrency,
		userLocks:   make(map[uuid.UUID]*sync.Mutex),
	}
}

// UserComputation reports one user's recompute.
type UserComputation struct {
	MatchesComputed int     `json:"matches_computed"`
	MatchesStored   int     `json:"matches_stored"`
	MinScore        float64 `json:"min_score"`
}

// BatchError records a single user's failure during the global batch.
type BatchError struct {
	UserID uuid.UUID `json:"user_id"`
	Error  string    `json:"error"`
}

// BatchComputation reports a global batch run.
type BatchComputation struct {
	TotalUsers       int          `json:"total_users"`
	UsersProcessed   int          `json:"users_processed"`
	UsersWithMatches int          `json:"users_with_matches"`
	TotalMatches     int          `json:"total_matches"`
	Errors           []BatchError `json:"errors"`
}

// ComputeMatchesForUser recomputes matches for one user against all active
// jobs. The user's stored match set is fully replaced: cleared, then rebuilt
// from pairs scoring at or above minScore. When resumeID is non-nil only that
// resume is scored; it must belong to the user. Returns NotFoundError when
// the user has no resumes or the named resume is absent.
func (s *Service) ComputeMatchesForUser(ctx context.Context, userID uuid.UUID, resumeID *uuid.UUID, minScore float64) (*UserComputation, error) {
	lock := s.lockFor(userID)
	lock.Lock()
	defer lock.Unlock()

	resumes, err := s.loadResumes(ctx, userID, resumeID)
	if err != nil {
		return nil, err
	}

	prefs, err := s.preferences.PreferencesForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	var userLocation, userRemotePref string
	if prefs != nil {
		userLocation = prefs.PreferredLocation
		userRemotePref = prefs.WorkType
	}

	jobs, err := s.jobs.ActiveJobs(ctx)
	if err != nil {
		return nil, err
	}

	computed := 0
	stored := make([]types.MatchResult, 0, len(resumes)*len(jobs))
	for i := range resumes {
		resume := &resumes[i]
		resumeText := resume.Text()
		resumeSkills := collectSkills(resumeText, resume.Parsed.Skills)

		for j := range jobs {
			job := &jobs[j]
			jobText := job.Text()
			jobSkills := collectSkills(jobText, nil)

			result := matching.ComputeMatchScore(matching.MatchInput{
				ResumeText:           resumeText,
				JobDescription:       jobText,
				ResumeSkills:         resumeSkills,
				JobSkills:            jobSkills,
				UserLocation:         userLocation,
				UserRemotePreference: userRemotePref,
				JobLocation:          job.Location,
				JobWorkType:          job.WorkType,
			})
			computed++

			if result.MatchScore >= minScore {
				result.UserID = userID
				result.ResumeID = resume.ID
				result.JobID = job.ID
				stored = append(stored, result)
			}
		}
	}

	// Replace-set write: clears prior matches even when nothing survives the
	// threshold, so stale results never linger.
	if err := s.matches.ReplaceUserMatches(ctx, userID, stored); err != nil {
		return nil, err
	}

	s.log.Debug("recomputed matches",
		zap.String("user_id", userID.String()),
		zap.Int("computed", computed),
		zap.Int("stored", len(stored)),
		zap.Float64("min_score", minScore))

	return &UserComputation{
		MatchesComputed: computed,
		MatchesStored:   len(stored),
		MinScore:        minScore,
	}, nil
}

// ComputeMatchesForAllUsers runs the per-user recompute across every active
// user. Users are scored in parallel; writes stay serialized per user. A user
// without resumes is skipped, not failed; any other per-user error is
// recorded and the batch continues.
func (s *Service) ComputeMatchesForAllUsers(ctx context.Context, minScore float64) (*BatchComputation, error) {
	userIDs, err := s.users.ActiveUserIDs(ctx)
	if err != nil {
		return nil, err
	}

	report := &BatchComputation{
		TotalUsers: len(userIDs),
		Errors:     []BatchError{},
	}
	var reportMu sync.Mutex

	s.log.Info("starting batch match computation",
		zap.Int("total_users", len(userIDs)),
		zap.Int("concurrency", s.concurrency))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, userID := range userIDs {
		g.Go(func() error {
			stats, err := s.ComputeMatchesForUser(gctx, userID, nil, minScore)

			reportMu.Lock()
			defer reportMu.Unlock()
			switch {
			case IsNotFound(err):
				// User has no resume yet; nothing to recompute.
				report.UsersProcessed++
				s.log.Debug("skipping user", zap.String("user_id", userID.String()), zap.Error(err))
			case err != nil:
				report.Errors = append(report.Errors, BatchError{UserID: userID, Error: err.Error()})
				s.log.Error("batch user failed", zap.String("user_id", userID.String()), zap.Error(err))
			default:
				report.UsersProcessed++
				if stats.MatchesStored > 0 {
					report.UsersWithMatches++
					report.TotalMatches += stats.MatchesStored
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.log.Info("batch match computation complete",
		zap.Int("users_processed", report.UsersProcessed),
		zap.Int("users_with_matches", report.UsersWithMatches),
		zap.Int("total_matches", report.TotalMatches),
		zap.Int("errors", len(report.Errors)))

	return report, nil
}

// loadResumes fetches the resumes in scope for a recompute.
func (s *Service) loadResumes(ctx context.Context, userID uuid.UUID, resumeID *uuid.UUID) ([]types.Resume, error) {
	if resumeID != nil {
		resume, err := s.resumes.ResumeForUser(ctx, userID, *resumeID)
		if err != nil {
			return nil, err
		}
		if resume == nil {
			return nil, &NotFoundError{Resource: "resume", ID: resumeID.String()}
		}
		return []types.Resume{*resume}, nil
	}

	resumes, err := s.resumes.ResumesForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(resumes) == 0 {
		return nil, &NotFoundError{Resource: "resume", ID: userID.String()}
	}
	return resumes, nil
}

// collectSkills merges lexicon-extracted skills from text with any
// explicitly listed skills. SkillOverlap deduplicates case-insensitively.
func collectSkills(text string, listed []string) []string {
	technical, soft := matching.ExtractSkills(text)
	skills := make([]string, 0, len(technical)+len(soft)+len(listed))
	skills = append(skills, technical...)
	skills = append(skills, soft...)
	skills = append(skills, listed...)
	return skills
}

// lockFor returns the mutex guarding one user's replace-set sequence.
func (s *Service) lockFor(userID uuid.UUID) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	lock, ok := s.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.userLocks[userID] = lock
	}
	return lock
}
