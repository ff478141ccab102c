package models

import "time"

// ProgressStatus tracks a node through its lifecycle. Transitions are
// monotonic: not_started -> in_progress -> completed, never backwards.
// A missing node reads as not started; stored nodes are always past that.
type ProgressStatus string

const (
	StatusNotStarted ProgressStatus = "not_started"
	StatusInProgress ProgressStatus = "in_progress"
	StatusCompleted  ProgressStatus = "completed"
)

// ExerciseProgress is the leaf of a user's progress tree
type ExerciseProgress struct {
	ExerciseID    string         `json:"exerciseId"`
	Status        ProgressStatus `json:"status"`
	Score         int            `json:"score"`
	LastAttempted *time.Time     `json:"lastAttempted,omitempty"`
}

// CourseProgress tracks one course inside a batch.
// TotalExercisesInCourse is snapshotted from the catalog when the node is
// created and never recomputed; catalog edits after that do not move the
// denominator for users already in the course.
type CourseProgress struct {
	CourseID                string             `json:"courseId"`
	Status                  ProgressStatus     `json:"status"`
	CompletedExercisesCount int                `json:"completedExercisesCount"`
	TotalExercisesInCourse  int                `json:"totalExercisesInCourse"`
	Exercises               []ExerciseProgress `json:"exercises"`
}

// BatchProgress tracks one course batch. Same snapshot rule as
// CourseProgress applies to TotalCoursesInBatch.
type BatchProgress struct {
	CourseBatchID         string           `json:"courseBatchId"`
	Status                ProgressStatus   `json:"status"`
	CompletedCoursesCount int              `json:"completedCoursesCount"`
	TotalCoursesInBatch   int              `json:"totalCoursesInBatch"`
	Courses               []CourseProgress `json:"courses"`
}

// FindBatchProgress returns a pointer into tree for the given batch, or nil
func FindBatchProgress(tree []BatchProgress, courseBatchID string) *BatchProgress {
	for i := range tree {
		if tree[i].CourseBatchID == courseBatchID {
			return &tree[i]
		}
	}
	return nil
}

// FindCourse returns a pointer to the course node, or nil
func (bp *BatchProgress) FindCourse(courseID string) *CourseProgress {
	for i := range bp.Courses {
		if bp.Courses[i].CourseID == courseID {
			return &bp.Courses[i]
		}
	}
	return nil
}

// FindExercise returns a pointer to the exercise node, or nil
func (cp *CourseProgress) FindExercise(exerciseID string) *ExerciseProgress {
	for i := range cp.Exercises {
		if cp.Exercises[i].ExerciseID == exerciseID {
			return &cp.Exercises[i]
		}
	}
	return nil
}
