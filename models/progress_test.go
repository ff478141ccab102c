package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() []BatchProgress {
	return []BatchProgress{
		{
			CourseBatchID:         "batch-1",
			Status:                StatusInProgress,
			CompletedCoursesCount: 1,
			TotalCoursesInBatch:   2,
			Courses: []CourseProgress{
				{
					CourseID:                "course-1",
					Status:                  StatusCompleted,
					CompletedExercisesCount: 2,
					TotalExercisesInCourse:  2,
					Exercises: []ExerciseProgress{
						{ExerciseID: "ex-1", Status: StatusCompleted},
						{ExerciseID: "ex-2", Status: StatusCompleted},
					},
				},
				{
					CourseID:               "course-2",
					Status:                 StatusInProgress,
					TotalExercisesInCourse: 3,
					Exercises: []ExerciseProgress{
						{ExerciseID: "ex-3", Status: StatusInProgress},
					},
				},
			},
		},
	}
}

func TestProgressTreeRoundTrip(t *testing.T) {
	var user User
	require.NoError(t, user.SetProgressTree(sampleTree()))

	decoded, err := user.ProgressTree()
	require.NoError(t, err)
	assert.Equal(t, sampleTree(), decoded)
}

func TestProgressTreeEmptyColumn(t *testing.T) {
	var user User

	tree, err := user.ProgressTree()
	require.NoError(t, err)
	assert.Nil(t, tree)
}

func TestFindBatchProgress(t *testing.T) {
	tree := sampleTree()

	assert.Nil(t, FindBatchProgress(tree, "missing"))
	assert.Nil(t, FindBatchProgress(nil, "batch-1"))

	found := FindBatchProgress(tree, "batch-1")
	require.NotNil(t, found)

	// Mutations through the pointer must land in the tree itself
	found.CompletedCoursesCount = 2
	assert.Equal(t, 2, tree[0].CompletedCoursesCount)
}

func TestFindCourseAndExercise(t *testing.T) {
	tree := sampleTree()
	batch := FindBatchProgress(tree, "batch-1")
	require.NotNil(t, batch)

	assert.Nil(t, batch.FindCourse("missing"))

	course := batch.FindCourse("course-2")
	require.NotNil(t, course)
	assert.Nil(t, course.FindExercise("missing"))

	exercise := course.FindExercise("ex-3")
	require.NotNil(t, exercise)

	exercise.Status = StatusCompleted
	assert.Equal(t, StatusCompleted, tree[0].Courses[1].Exercises[0].Status)
}
