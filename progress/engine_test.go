package progress

import (
	"context"
	"fmt"
	"testing"
	"time"

	"skillup/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.CourseBatch{},
		&models.Course{},
		&models.Exercise{},
	))

	return db
}

func createBatch(t *testing.T, db *gorm.DB, batchID string, courseIDs ...string) {
	t.Helper()

	batch := models.CourseBatch{
		CourseBatchID: batchID,
		DateCreated:   time.Now(),
		Stage:         1,
	}
	require.NoError(t, batch.SetCourses(courseIDs))
	require.NoError(t, db.Create(&batch).Error)
}

func createCourse(t *testing.T, db *gorm.DB, batchID, courseID string, exerciseIDs ...string) {
	t.Helper()

	course := models.Course{
		CourseID:      courseID,
		CourseBatchID: batchID,
		Title:         "Course " + courseID,
		Level:         1,
		DateCreated:   time.Now(),
	}
	require.NoError(t, course.SetExercises(exerciseIDs))
	require.NoError(t, db.Create(&course).Error)
}

func createExercise(t *testing.T, db *gorm.DB, batchID, courseID, exerciseID string, difficulty int) {
	t.Helper()

	exercise := models.Exercise{
		ExerciseID:      exerciseID,
		CourseID:        courseID,
		CourseBatchID:   batchID,
		DifficultyLevel: difficulty,
		Question:        "Question " + exerciseID,
		Answer:          "42",
	}
	require.NoError(t, exercise.SetOptions([]string{"41", "42"}))
	require.NoError(t, db.Create(&exercise).Error)
}

func createUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()

	user := models.User{
		Username: username,
		Nickname: username,
		Email:    username + "@example.com",
		Password: "hashed",
		Level:    1,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func reloadUser(t *testing.T, db *gorm.DB, id uint) models.User {
	t.Helper()

	var user models.User
	require.NoError(t, db.First(&user, id).Error)
	return user
}

func TestCompleteExercise_FirstCompletion(t *testing.T) {
	db := setupTestDB(t)
	createBatch(t, db, "batch-1", "course-1")
	createCourse(t, db, "batch-1", "course-1", "ex-1")
	createExercise(t, db, "batch-1", "course-1", "ex-1", 3)
	user := createUser(t, db, "alice")

	engine := NewEngine(db)
	result, err := engine.CompleteExercise(context.Background(), user.ID, "batch-1", "course-1", "ex-1")
	require.NoError(t, err)

	assert.Equal(t, 30, result.AwardedXP)
	assert.Equal(t, 30, result.CurrentXP)
	assert.Equal(t, 1, result.Level)
	assert.False(t, result.AlreadyCompleted)
	assert.Equal(t, models.StatusCompleted, result.ExerciseStatus)
	assert.Equal(t, 1.0, result.CourseProgress)

	stored := reloadUser(t, db, user.ID)
	assert.Equal(t, uint(30), stored.XP)
	assert.Equal(t, uint(1), stored.Level)
	assert.Equal(t, uint(1), stored.ProgressVersion)

	tree, err := stored.ProgressTree()
	require.NoError(t, err)
	require.Len(t, tree, 1)

	batchNode := tree[0]
	assert.Equal(t, "batch-1", batchNode.CourseBatchID)
	assert.Equal(t, models.StatusCompleted, batchNode.Status)
	assert.Equal(t, 1, batchNode.CompletedCoursesCount)
	assert.Equal(t, 1, batchNode.TotalCoursesInBatch)

	require.Len(t, batchNode.Courses, 1)
	courseNode := batchNode.Courses[0]
	assert.Equal(t, models.StatusCompleted, courseNode.Status)
	assert.Equal(t, 1, courseNode.CompletedExercisesCount)
	assert.Equal(t, 1, courseNode.TotalExercisesInCourse)

	require.Len(t, courseNode.Exercises, 1)
	exerciseNode := courseNode.Exercises[0]
	assert.Equal(t, "ex-1", exerciseNode.ExerciseID)
	assert.Equal(t, models.StatusCompleted, exerciseNode.Status)
	require.NotNil(t, exerciseNode.LastAttempted)
}

func TestCompleteExercise_RepeatIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	createBatch(t, db, "batch-1", "course-1")
	createCourse(t, db, "batch-1", "course-1", "ex-1")
	createExercise(t, db, "batch-1", "course-1", "ex-1", 3)
	user := createUser(t, db, "alice")

	engine := NewEngine(db)

	first, err := engine.CompleteExercise(context.Background(), user.ID, "batch-1", "course-1", "ex-1")
	require.NoError(t, err)
	assert.False(t, first.AlreadyCompleted)
	assert.Equal(t, 30, first.AwardedXP)

	second, err := engine.CompleteExercise(context.Background(), user.ID, "batch-1", "course-1", "ex-1")
	require.NoError(t, err)
	assert.True(t, second.AlreadyCompleted)
	assert.Equal(t, 0, second.AwardedXP)
	assert.Equal(t, 30, second.CurrentXP)
	assert.Equal(t, models.StatusCompleted, second.ExerciseStatus)

	stored := reloadUser(t, db, user.ID)
	assert.Equal(t, uint(30), stored.XP)
	// The repeat must not write at all
	assert.Equal(t, uint(1), stored.ProgressVersion)

	tree, err := stored.ProgressTree()
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, 1, tree[0].Courses[0].CompletedExercisesCount)
	require.Len(t, tree[0].Courses[0].Exercises, 1)
}

func TestCompleteExercise_LevelUp(t *testing.T) {
	db := setupTestDB(t)
	createBatch(t, db, "batch-1", "course-1")
	createCourse(t, db, "batch-1", "course-1", "ex-1")
	createExercise(t, db, "batch-1", "course-1", "ex-1", 1)
	user := createUser(t, db, "alice")
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).Update("xp", 95).Error)

	engine := NewEngine(db)
	result, err := engine.CompleteExercise(context.Background(), user.ID, "batch-1", "course-1", "ex-1")
	require.NoError(t, err)

	assert.Equal(t, 10, result.AwardedXP)
	assert.Equal(t, 105, result.CurrentXP)
	assert.Equal(t, 2, result.Level)

	stored := reloadUser(t, db, user.ID)
	assert.Equal(t, uint(105), stored.XP)
	assert.Equal(t, uint(2), stored.Level)
}

func TestCompleteExercise_MissingEntities(t *testing.T) {
	db := setupTestDB(t)
	createBatch(t, db, "batch-1", "course-1")
	createCourse(t, db, "batch-1", "course-1", "ex-1")
	createExercise(t, db, "batch-1", "course-1", "ex-1", 2)
	user := createUser(t, db, "alice")

	engine := NewEngine(db)
	ctx := context.Background()

	tests := []struct {
		name       string
		userID     uint
		batchID    string
		courseID   string
		exerciseID string
		wantEntity string
	}{
		{"unknown user", user.ID + 99, "batch-1", "course-1", "ex-1", "User"},
		{"unknown batch", user.ID, "nope", "course-1", "ex-1", "Course batch"},
		{"unknown course", user.ID, "batch-1", "nope", "ex-1", "Course"},
		{"unknown exercise", user.ID, "batch-1", "course-1", "nope", "Exercise"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.CompleteExercise(ctx, tt.userID, tt.batchID, tt.courseID, tt.exerciseID)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, IsNotFound(err))

			var notFound *NotFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, tt.wantEntity, notFound.Entity)
		})
	}

	// No lookup failure may leave any mutation behind
	stored := reloadUser(t, db, user.ID)
	assert.Equal(t, uint(0), stored.XP)
	assert.Equal(t, uint(0), stored.ProgressVersion)
	assert.Empty(t, stored.Progress)
}

func TestCompleteExercise_CourseWithThreeExercises(t *testing.T) {
	db := setupTestDB(t)
	createBatch(t, db, "batch-1", "course-1")
	createCourse(t, db, "batch-1", "course-1", "ex-1", "ex-2", "ex-3")
	for _, id := range []string{"ex-1", "ex-2", "ex-3"} {
		createExercise(t, db, "batch-1", "course-1", id, 1)
	}
	user := createUser(t, db, "alice")

	engine := NewEngine(db)
	ctx := context.Background()

	first, err := engine.CompleteExercise(ctx, user.ID, "batch-1", "course-1", "ex-1")
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3.0, first.CourseProgress, 1e-9)

	second, err := engine.CompleteExercise(ctx, user.ID, "batch-1", "course-1", "ex-2")
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, second.CourseProgress, 1e-9)

	stored := reloadUser(t, db, user.ID)
	tree, err := stored.ProgressTree()
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, tree[0].Courses[0].Status)
	assert.Equal(t, 0, tree[0].CompletedCoursesCount)

	third, err := engine.CompleteExercise(ctx, user.ID, "batch-1", "course-1", "ex-3")
	require.NoError(t, err)
	assert.Equal(t, 1.0, third.CourseProgress)

	stored = reloadUser(t, db, user.ID)
	tree, err = stored.ProgressTree()
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, tree[0].Courses[0].Status)
	assert.Equal(t, 3, tree[0].Courses[0].CompletedExercisesCount)
	assert.Equal(t, 1, tree[0].CompletedCoursesCount)
	assert.Equal(t, models.StatusCompleted, tree[0].Status)
}

func TestCompleteExercise_BatchCompletesAfterLastCourse(t *testing.T) {
	db := setupTestDB(t)
	createBatch(t, db, "batch-1", "course-1", "course-2")
	createCourse(t, db, "batch-1", "course-1", "ex-1")
	createCourse(t, db, "batch-1", "course-2", "ex-2")
	createExercise(t, db, "batch-1", "course-1", "ex-1", 1)
	createExercise(t, db, "batch-1", "course-2", "ex-2", 1)
	user := createUser(t, db, "alice")

	engine := NewEngine(db)
	ctx := context.Background()

	_, err := engine.CompleteExercise(ctx, user.ID, "batch-1", "course-1", "ex-1")
	require.NoError(t, err)

	stored := reloadUser(t, db, user.ID)
	tree, err := stored.ProgressTree()
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, tree[0].Status)
	assert.Equal(t, 1, tree[0].CompletedCoursesCount)
	assert.Equal(t, 2, tree[0].TotalCoursesInBatch)

	_, err = engine.CompleteExercise(ctx, user.ID, "batch-1", "course-2", "ex-2")
	require.NoError(t, err)

	stored = reloadUser(t, db, user.ID)
	tree, err = stored.ProgressTree()
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, tree[0].Status)
	assert.Equal(t, 2, tree[0].CompletedCoursesCount)
	require.Len(t, tree[0].Courses, 2)
}

func TestCompleteExercise_FlipsSeededInProgressNode(t *testing.T) {
	db := setupTestDB(t)
	createBatch(t, db, "batch-1", "course-1")
	createCourse(t, db, "batch-1", "course-1", "ex-1", "ex-2")
	createExercise(t, db, "batch-1", "course-1", "ex-1", 2)
	createExercise(t, db, "batch-1", "course-1", "ex-2", 2)
	user := createUser(t, db, "alice")

	// Seed an attempted-but-unfinished exercise node
	seeded := []models.BatchProgress{{
		CourseBatchID:       "batch-1",
		Status:              models.StatusInProgress,
		TotalCoursesInBatch: 1,
		Courses: []models.CourseProgress{{
			CourseID:               "course-1",
			Status:                 models.StatusInProgress,
			TotalExercisesInCourse: 2,
			Exercises: []models.ExerciseProgress{{
				ExerciseID: "ex-1",
				Status:     models.StatusInProgress,
			}},
		}},
	}}
	require.NoError(t, user.SetProgressTree(seeded))
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).Update("progress", user.Progress).Error)

	engine := NewEngine(db)
	result, err := engine.CompleteExercise(context.Background(), user.ID, "batch-1", "course-1", "ex-1")
	require.NoError(t, err)
	assert.False(t, result.AlreadyCompleted)
	assert.Equal(t, 20, result.AwardedXP)
	assert.Equal(t, 0.5, result.CourseProgress)

	stored := reloadUser(t, db, user.ID)
	tree, err := stored.ProgressTree()
	require.NoError(t, err)
	courseNode := tree[0].Courses[0]
	assert.Equal(t, 1, courseNode.CompletedExercisesCount)
	require.Len(t, courseNode.Exercises, 1)
	assert.Equal(t, models.StatusCompleted, courseNode.Exercises[0].Status)
	require.NotNil(t, courseNode.Exercises[0].LastAttempted)
}

func TestCompleteExercise_RetriesOnVersionConflict(t *testing.T) {
	db := setupTestDB(t)
	createBatch(t, db, "batch-1", "course-1")
	createCourse(t, db, "batch-1", "course-1", "ex-1")
	createExercise(t, db, "batch-1", "course-1", "ex-1", 1)
	user := createUser(t, db, "alice")

	// Bump the user's version out from under the engine's first write to
	// force the compare-and-swap to miss once.
	interfered := false
	err := db.Callback().Update().Before("gorm:update").Register("test_conflict", func(tx *gorm.DB) {
		if interfered {
			return
		}
		interfered = true
		tx.Session(&gorm.Session{NewDB: true}).
			Exec("UPDATE users SET progress_version = progress_version + 1 WHERE id = ?", user.ID)
	})
	require.NoError(t, err)

	engine := NewEngine(db)
	result, err := engine.CompleteExercise(context.Background(), user.ID, "batch-1", "course-1", "ex-1")
	require.NoError(t, err)
	assert.Equal(t, 10, result.AwardedXP)

	stored := reloadUser(t, db, user.ID)
	// One external bump plus one successful engine write
	assert.Equal(t, uint(2), stored.ProgressVersion)
	assert.Equal(t, uint(10), stored.XP)
}

func TestLeaderboard(t *testing.T) {
	db := setupTestDB(t)

	seed := []struct {
		username string
		xp       uint
		deleted  bool
	}{
		{"low", 10, false},
		{"top", 50, false},
		{"mid", 30, false},
		{"gone", 99, true},
	}
	for _, s := range seed {
		user := createUser(t, db, s.username)
		require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).
			Updates(map[string]interface{}{"xp": s.xp, "is_deleted": s.deleted}).Error)
	}

	engine := NewEngine(db)

	entries, err := engine.Leaderboard(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "top", entries[0].Nickname)
	assert.Equal(t, uint(50), entries[0].XP)
	assert.Equal(t, "mid", entries[1].Nickname)

	// Non-positive limit falls back to the default
	all, err := engine.Leaderboard(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
