package grouping

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"groupform-server-go/models"
)

func roster(scores ...float64) []models.Student {
	students := make([]models.Student, len(scores))
	for i, s := range scores {
		students[i] = models.Student{Name: fmt.Sprintf("s%02d", i), Score: s}
	}
	return students
}

func TestPartition(t *testing.T) {
	t.Run("interleaves ranked students across groups", func(t *testing.T) {
		students := []models.Student{
			{Name: "A", Score: 90},
			{Name: "B", Score: 85},
			{Name: "C", Score: 80},
			{Name: "D", Score: 75},
			{Name: "E", Score: 70},
		}

		groups, err := Partition(students, 4)

		require.NoError(t, err)
		want := models.Assignment{
			{{Name: "A", Score: 90}, {Name: "C", Score: 80}, {Name: "E", Score: 70}},
			{{Name: "B", Score: 85}, {Name: "D", Score: 75}},
		}
		if diff := cmp.Diff(want, groups); diff != "" {
			t.Fatalf("unexpected groups (-want +got):\n%s", diff)
		}
	})

	t.Run("sorts unordered input before dealing", func(t *testing.T) {
		students := []models.Student{
			{Name: "low", Score: 10},
			{Name: "top", Score: 99},
			{Name: "mid", Score: 50},
		}

		groups, err := Partition(students, 2)

		require.NoError(t, err)
		require.Len(t, groups, 2)
		require.Equal(t, models.Group{{Name: "top", Score: 99}, {Name: "low", Score: 10}}, groups[0])
		require.Equal(t, models.Group{{Name: "mid", Score: 50}}, groups[1])
	})

	t.Run("eight students split evenly into two groups", func(t *testing.T) {
		students := roster(60, 95, 70, 88, 40, 55, 91, 75)

		groups, err := Partition(students, 4)

		require.NoError(t, err)
		require.Len(t, groups, 2)
		require.Len(t, groups[0], 4)
		require.Len(t, groups[1], 4)
		require.Equal(t, 95.0, groups[0][0].Score)
		require.Equal(t, 91.0, groups[1][0].Score)
	})

	t.Run("ties keep roster order", func(t *testing.T) {
		students := []models.Student{
			{Name: "first", Score: 80},
			{Name: "second", Score: 80},
			{Name: "third", Score: 80},
			{Name: "best", Score: 90},
		}

		groups, err := Partition(students, 2)

		require.NoError(t, err)
		require.Equal(t, []string{"best", "second"}, names(groups[0]))
		require.Equal(t, []string{"first", "third"}, names(groups[1]))
	})

	t.Run("does not reorder the caller's roster", func(t *testing.T) {
		students := roster(1, 2, 3)
		before := append([]models.Student(nil), students...)

		_, err := Partition(students, 2)

		require.NoError(t, err)
		require.Equal(t, before, students)
	})

	t.Run("empty roster yields no groups", func(t *testing.T) {
		groups, err := Partition(nil, 4)

		require.NoError(t, err)
		require.Empty(t, groups)
	})

	t.Run("rejects non-positive group size", func(t *testing.T) {
		for _, size := range []int{0, -3} {
			_, err := Partition(roster(1, 2), size)

			require.Error(t, err)
			require.ErrorIs(t, err, ErrInvalidGroupSize)
			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			require.Equal(t, size, cfgErr.GroupSize)
		}
	})

	t.Run("group size larger than roster gives one group", func(t *testing.T) {
		groups, err := Partition(roster(3, 1, 2), 10)

		require.NoError(t, err)
		require.Len(t, groups, 1)
		require.Len(t, groups[0], 3)
	})
}

func TestPartition_Properties(t *testing.T) {
	for n := 0; n <= 23; n++ {
		for size := 1; size <= 7; size++ {
			scores := make([]float64, n)
			for i := range scores {
				// Repeating values exercise ties.
				scores[i] = float64((i * 37) % 11)
			}
			students := roster(scores...)

			groups, err := Partition(students, size)
			require.NoError(t, err)

			wantGroups := (n + size - 1) / size
			require.Len(t, groups, wantGroups, "n=%d size=%d", n, size)

			seen := make(map[string]int)
			minSize, maxSize := n, 0
			for _, g := range groups {
				require.NotEmpty(t, g, "n=%d size=%d", n, size)
				minSize = min(minSize, len(g))
				maxSize = max(maxSize, len(g))
				for _, s := range g {
					seen[s.Name]++
				}
			}
			require.Len(t, seen, n)
			for name, count := range seen {
				require.Equal(t, 1, count, "student %s placed %d times", name, count)
			}
			if n > 0 {
				require.LessOrEqual(t, maxSize-minSize, 1, "n=%d size=%d", n, size)
			}

			again, err := Partition(students, size)
			require.NoError(t, err)
			require.Equal(t, groups, again)
		}
	}
}

func names(g models.Group) []string {
	out := make([]string, len(g))
	for i, s := range g {
		out[i] = s.Name
	}
	return out
}
