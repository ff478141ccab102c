package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skillup/models"

	"gorm.io/gorm"
)

// maxRetries bounds the optimistic-concurrency retry loop
const maxRetries = 3

// DefaultLeaderboardLimit is used when callers pass a non-positive limit
const DefaultLeaderboardLimit = 10

// Result is the outcome of a completion call
type Result struct {
	AwardedXP        int
	CurrentXP        int
	Level            int
	AlreadyCompleted bool
	ExerciseStatus   models.ProgressStatus
	CourseProgress   float64
}

// LeaderboardEntry is the public projection of a ranked user
type LeaderboardEntry struct {
	Nickname       string `json:"nickname"`
	XP             uint   `json:"xp"`
	ProfilePicture string `json:"profilePicture"`
}

// Engine applies exercise completions to a user's embedded progress tree
// and derives the leaderboard view.
type Engine struct {
	db      *gorm.DB
	scoring ScoringPolicy
}

// NewEngine returns an engine using the default scoring policy
func NewEngine(db *gorm.DB) *Engine {
	return &Engine{db: db, scoring: DefaultScoring}
}

// NewEngineWithScoring returns an engine with a custom scoring policy
func NewEngineWithScoring(db *gorm.DB, scoring ScoringPolicy) *Engine {
	return &Engine{db: db, scoring: scoring}
}

// CompleteExercise marks an exercise completed for a user, awards XP on
// first-time completion and updates the rollup counters up the tree.
// Repeats are safe no-ops. The whole User aggregate is persisted in a
// single compare-and-swap write; on version conflict the computation is
// redone from fresh state a bounded number of times.
func (e *Engine) CompleteExercise(ctx context.Context, userID uint, courseBatchID, courseID, exerciseID string) (*Result, error) {
	for attempt := 0; attempt < maxRetries; attempt++ {
		result, err := e.completeOnce(ctx, userID, courseBatchID, courseID, exerciseID)
		if errors.Is(err, ErrConflict) {
			continue
		}
		return result, err
	}
	return nil, fmt.Errorf("completion for user %d gave up after %d attempts: %w", userID, maxRetries, ErrConflict)
}

func (e *Engine) completeOnce(ctx context.Context, userID uint, courseBatchID, courseID, exerciseID string) (*Result, error) {
	db := e.db.WithContext(ctx)

	// Every lookup must succeed before anything is mutated, so a missing
	// identifier can never leave a partial write behind.
	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "User", ID: fmt.Sprint(userID)}
		}
		return nil, err
	}

	var batch models.CourseBatch
	if err := db.Where("course_batch_id = ? AND is_deleted = ?", courseBatchID, false).First(&batch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Course batch", ID: courseBatchID}
		}
		return nil, err
	}

	var course models.Course
	if err := db.Where("course_id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Course", ID: courseID}
		}
		return nil, err
	}

	var exercise models.Exercise
	if err := db.Where("exercise_id = ? AND is_deleted = ?", exerciseID, false).First(&exercise).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Exercise", ID: exerciseID}
		}
		return nil, err
	}

	tree, err := user.ProgressTree()
	if err != nil {
		return nil, fmt.Errorf("decode progress for user %d: %w", userID, err)
	}

	batchNode := models.FindBatchProgress(tree, courseBatchID)
	var courseNode *models.CourseProgress
	var exerciseNode *models.ExerciseProgress
	if batchNode != nil {
		courseNode = batchNode.FindCourse(courseID)
	}
	if courseNode != nil {
		exerciseNode = courseNode.FindExercise(exerciseID)
	}

	if exerciseNode != nil && exerciseNode.Status == models.StatusCompleted {
		// Idempotent repeat: no award, no counter change, no write.
		return &Result{
			AwardedXP:        0,
			CurrentXP:        int(user.XP),
			Level:            int(user.Level),
			AlreadyCompleted: true,
			ExerciseStatus:   models.StatusCompleted,
			CourseProgress:   completionRatio(courseNode),
		}, nil
	}

	awarded := e.scoring.AwardXP(exercise.DifficultyLevel)
	user.XP += uint(awarded)
	if level := e.scoring.LevelForXP(int(user.XP)); level > int(user.Level) {
		user.Level = uint(level)
	}

	attemptedAt := time.Now().UTC()
	freshCourseNode := false

	switch {
	case batchNode == nil:
		// Batch never touched: materialize the whole ancestry with the
		// exercise baked in as completed.
		tree = append(tree, models.BatchProgress{
			CourseBatchID:         courseBatchID,
			Status:                models.StatusInProgress,
			CompletedCoursesCount: 0,
			TotalCoursesInBatch:   len(batch.Courses()),
			Courses: []models.CourseProgress{
				newCourseProgress(courseID, len(course.Exercises()), exerciseID, attemptedAt),
			},
		})
		batchNode = &tree[len(tree)-1]
		courseNode = &batchNode.Courses[0]
		freshCourseNode = true
	case courseNode == nil:
		batchNode.Courses = append(batchNode.Courses, newCourseProgress(courseID, len(course.Exercises()), exerciseID, attemptedAt))
		courseNode = &batchNode.Courses[len(batchNode.Courses)-1]
		freshCourseNode = true
	case exerciseNode == nil:
		courseNode.Exercises = append(courseNode.Exercises, models.ExerciseProgress{
			ExerciseID:    exerciseID,
			Status:        models.StatusCompleted,
			LastAttempted: &attemptedAt,
		})
	default:
		exerciseNode.Status = models.StatusCompleted
		exerciseNode.LastAttempted = &attemptedAt
	}

	// A fresh course node is created with its first exercise already
	// counted; incrementing again would double count it.
	if !freshCourseNode {
		courseNode.CompletedExercisesCount++
	}

	if courseNode.CompletedExercisesCount >= courseNode.TotalExercisesInCourse && courseNode.Status != models.StatusCompleted {
		courseNode.Status = models.StatusCompleted
		batchNode.CompletedCoursesCount++
	}
	if batchNode.CompletedCoursesCount >= batchNode.TotalCoursesInBatch && batchNode.Status != models.StatusCompleted {
		batchNode.Status = models.StatusCompleted
	}

	if err := user.SetProgressTree(tree); err != nil {
		return nil, fmt.Errorf("encode progress for user %d: %w", userID, err)
	}

	// Compare-and-swap on progress_version: a racing completion for the
	// same user bumps the version first and this write affects zero rows.
	persist := db.Model(&models.User{}).
		Where("id = ? AND progress_version = ?", user.ID, user.ProgressVersion).
		Updates(map[string]interface{}{
			"progress":         user.Progress,
			"xp":               user.XP,
			"level":            user.Level,
			"progress_version": user.ProgressVersion + 1,
		})
	if persist.Error != nil {
		return nil, persist.Error
	}
	if persist.RowsAffected == 0 {
		return nil, ErrConflict
	}

	return &Result{
		AwardedXP:        awarded,
		CurrentXP:        int(user.XP),
		Level:            int(user.Level),
		AlreadyCompleted: false,
		ExerciseStatus:   models.StatusCompleted,
		CourseProgress:   completionRatio(courseNode),
	}, nil
}

// Leaderboard returns the top users ordered by XP descending. It reads
// committed state only and may lag completions still in flight.
func (e *Engine) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}

	var users []models.User
	if err := e.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("xp desc").
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, len(users))
	for i, u := range users {
		entries[i] = LeaderboardEntry{
			Nickname:       u.Nickname,
			XP:             u.XP,
			ProfilePicture: u.ProfilePicture,
		}
	}
	return entries, nil
}

func newCourseProgress(courseID string, totalExercises int, exerciseID string, attemptedAt time.Time) models.CourseProgress {
	return models.CourseProgress{
		CourseID: courseID,
		Status:   models.StatusInProgress,
		// The node is born with its first exercise completed
		CompletedExercisesCount: 1,
		TotalExercisesInCourse:  totalExercises,
		Exercises: []models.ExerciseProgress{{
			ExerciseID:    exerciseID,
			Status:        models.StatusCompleted,
			LastAttempted: &attemptedAt,
		}},
	}
}

func completionRatio(courseNode *models.CourseProgress) float64 {
	if courseNode == nil || courseNode.TotalExercisesInCourse == 0 {
		return 0
	}
	return float64(courseNode.CompletedExercisesCount) / float64(courseNode.TotalExercisesInCourse)
}
