package workers

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	dbpkg "northstar/db"
	"northstar/models"
	"northstar/prompts"
	"northstar/tools"

	"github.com/jinzhu/gorm"
)

// ErrAlreadyRunning is returned when a generation for the same user is
// still in flight. Rejecting here is what prevents two goroutines from
// racing last-write-wins on the same summary field.
var ErrAlreadyRunning = errors.New("analysis already running for this user")

// Generator is the LLM boundary the runner depends on. *tools.GeminiClient
// satisfies it.
type Generator interface {
	HasKey() bool
	Generate(ctx context.Context, model string, prompt string) (string, error)
}

// Runner executes profile generations in the background. One goroutine per
// triggered analysis; the in-flight set lives in memory only, so a restart
// clears it and a sentinel left behind by a killed process can simply be
// re-triggered.
type Runner struct {
	db      *gorm.DB
	llm     Generator
	model   string
	timeout time.Duration

	mu       sync.Mutex
	inflight map[int64]bool
}

func NewRunner(db *gorm.DB, llm Generator, model string, timeout time.Duration) *Runner {
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Runner{
		db:       db,
		llm:      llm,
		model:    model,
		timeout:  timeout,
		inflight: make(map[int64]bool),
	}
}

// Start triggers a generation for the user. It persists the analyzing
// sentinel before returning so the caller can answer immediately; the
// model call itself runs in a detached goroutine. Configuration errors
// (missing key) are returned synchronously and nothing is persisted.
func (r *Runner) Start(userID int64) error {
	if r.llm == nil || !r.llm.HasKey() {
		return tools.ErrNoAPIKey
	}

	r.mu.Lock()
	if r.inflight[userID] {
		r.mu.Unlock()
		return ErrAlreadyRunning
	}
	r.inflight[userID] = true
	r.mu.Unlock()

	profile, err := dbpkg.EnsureProfile(r.db, userID)
	if err != nil {
		r.finish(userID)
		return err
	}

	if err := r.db.Model(&models.Profile{}).
		Where("id = ?", profile.ID).
		Update("ai_summary", models.AI_SUMMARY_ANALYZING).Error; err != nil {
		r.finish(userID)
		return err
	}

	go r.run(userID, profile.ID)
	return nil
}

// Running reports whether a generation for the user is currently in
// flight in this process.
func (r *Runner) Running(userID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inflight[userID]
}

func (r *Runner) finish(userID int64) {
	r.mu.Lock()
	delete(r.inflight, userID)
	r.mu.Unlock()
}

func (r *Runner) run(userID, profileID int64) {
	defer r.finish(userID)

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	var profile models.Profile
	if err := r.db.First(&profile, profileID).Error; err != nil {
		log.Printf("analysis worker: load profile: %v", err)
		r.store(profileID, models.AI_SUMMARY_FAILED_PREFIX+err.Error())
		return
	}

	var surveys []models.Survey
	if err := r.db.
		Where("user_id = ? AND is_completed = ?", userID, true).
		Order("created_at desc, id desc").
		Find(&surveys).Error; err != nil {
		log.Printf("analysis worker: load surveys: %v", err)
		r.store(profileID, models.AI_SUMMARY_FAILED_PREFIX+err.Error())
		return
	}

	// Profile synthesis is the one path allowed to see respondent names.
	contextDoc := prompts.BuildContext(profile, surveys, true)
	prompt := prompts.ProfilePrompt(contextDoc)

	text, err := r.llm.Generate(ctx, r.model, prompt)
	if err != nil {
		log.Printf("analysis worker: gemini error: %v", err)
		r.store(profileID, models.AI_SUMMARY_FAILED_PREFIX+err.Error())
		return
	}

	r.store(profileID, text)
}

func (r *Runner) store(profileID int64, summary string) {
	if err := r.db.Model(&models.Profile{}).
		Where("id = ?", profileID).
		Update("ai_summary", summary).Error; err != nil {
		log.Printf("analysis worker: store summary: %v", err)
	}
}
