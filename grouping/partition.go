// Package grouping forms balanced student groups from a scored roster and
// produces the labeled tables and text that every output surface shares.
package grouping

import (
	"sort"

	"groupform-server-go/models"
)

// DefaultGroupSize is used when a caller does not ask for a specific size.
const DefaultGroupSize = 4

// Partition splits students into balanced groups.
//
// Students are ranked by score, highest first, with ties kept in roster order.
// The number of groups is ceil(len(students) / groupSize), and the ranked
// students are dealt round-robin: rank i goes to group i % numGroups. Top
// scorers therefore land in different groups.
//
// Note that groupSize only decides how many groups exist. The resulting groups
// differ in size by at most one and are often smaller than groupSize: 5
// students with groupSize 4 yield two groups of 3 and 2, not 4 and 1.
//
// An empty roster yields an empty assignment and no error.
func Partition(students []models.Student, groupSize int) (models.Assignment, error) {
	if groupSize <= 0 {
		return nil, &ConfigError{GroupSize: groupSize, Err: ErrInvalidGroupSize}
	}

	ranked := rank(students)

	numGroups := len(ranked) / groupSize
	if len(ranked)%groupSize != 0 {
		numGroups++
	}

	groups := make(models.Assignment, numGroups)
	for i, s := range ranked {
		idx := i % numGroups
		groups[idx] = append(groups[idx], s)
	}

	return groups, nil
}

// rank returns a copy of students sorted by descending score. Equal scores
// keep their relative input order.
func rank(students []models.Student) []models.Student {
	ranked := make([]models.Student, len(students))
	copy(ranked, students)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
