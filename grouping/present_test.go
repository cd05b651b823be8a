package grouping

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"groupform-server-go/models"
)

func TestLabel(t *testing.T) {
	t.Run("leader is the highest scorer", func(t *testing.T) {
		group := models.Group{
			{Name: "C", Score: 70},
			{Name: "A", Score: 92.5},
			{Name: "B", Score: 81},
		}

		rows := Label(group)

		require.Equal(t, []models.Row{
			{Name: "A", Score: 92.5, Role: models.RoleLeader},
			{Name: "B", Score: 81, Role: models.RoleMember},
			{Name: "C", Score: 70, Role: models.RoleMember},
		}, rows)
	})

	t.Run("exactly one leader even with tied scores", func(t *testing.T) {
		group := models.Group{{Name: "x", Score: 50}, {Name: "y", Score: 50}}

		rows := Label(group)

		require.Equal(t, models.RoleLeader, rows[0].Role)
		require.Equal(t, "x", rows[0].Name)
		require.Equal(t, models.RoleMember, rows[1].Role)
	})

	t.Run("empty group has no rows", func(t *testing.T) {
		require.Empty(t, Label(nil))
	})
}

func TestLabel_LeaderProperty(t *testing.T) {
	groups, err := Partition(roster(12, 44, 3, 44, 90, 61, 7, 28, 90, 15, 33), 3)
	require.NoError(t, err)

	for _, g := range groups {
		rows := Label(g)
		leaders := 0
		for _, r := range rows {
			if r.Role == models.RoleLeader {
				leaders++
			}
			require.GreaterOrEqual(t, rows[0].Score, r.Score)
		}
		require.Equal(t, 1, leaders)
	}
}

func TestRender(t *testing.T) {
	t.Run("formats groups as titled tables", func(t *testing.T) {
		groups, err := Partition([]models.Student{
			{Name: "A", Score: 90},
			{Name: "B", Score: 85},
			{Name: "C", Score: 80},
			{Name: "D", Score: 75},
			{Name: "E", Score: 70},
		}, 4)
		require.NoError(t, err)

		want := "Group 1:\n" +
			"name  score  role\n" +
			"A     90     leader\n" +
			"C     80\n" +
			"E     70\n" +
			"\n" +
			"Group 2:\n" +
			"name  score  role\n" +
			"B     85     leader\n" +
			"D     75\n"

		require.Equal(t, want, Render(groups))
	})

	t.Run("fractional scores keep their decimals", func(t *testing.T) {
		text := Render(models.Assignment{{{Name: "Kim", Score: 87.5}}})

		require.Contains(t, text, "87.5")
		require.True(t, strings.HasPrefix(text, "Group 1:\n"))
	})

	t.Run("control characters in names stay inside one row", func(t *testing.T) {
		text := Render(models.Assignment{{
			{Name: "Kim\tLee", Score: 90},
			{Name: "Park\nChoi", Score: 80},
		}})

		want := "Group 1:\n" +
			"name       score  role\n" +
			"Kim Lee    90     leader\n" +
			"Park Choi  80\n"
		require.Equal(t, want, text)
	})

	t.Run("empty assignment renders nothing", func(t *testing.T) {
		require.Equal(t, "", Render(nil))
		require.Equal(t, "", Render(models.Assignment{}))
	})

	t.Run("is deterministic", func(t *testing.T) {
		groups, err := Partition(roster(5, 5, 5, 9, 1, 5, 7), 2)
		require.NoError(t, err)

		require.Equal(t, Render(groups), Render(groups))
	})
}

func TestTables_MatchRender(t *testing.T) {
	groups, err := Partition(roster(71, 64, 88, 90, 59, 77, 82), 3)
	require.NoError(t, err)

	tables := Tables(groups)

	require.Len(t, tables, len(groups))
	for i, table := range tables {
		require.Equal(t, i+1, table.Index)
		require.Equal(t, Title(i+1), table.Title)
		require.Equal(t, Label(groups[i]), table.Rows)
	}
	require.Equal(t, Render(groups), RenderTables(tables))
}

func TestStats(t *testing.T) {
	stats := Stats(models.Assignment{
		{{Name: "A", Score: 90}, {Name: "C", Score: 80}, {Name: "E", Score: 70}},
		{{Name: "D", Score: 75}, {Name: "B", Score: 85}},
	})

	require.Equal(t, []models.GroupStats{
		{Index: 1, Size: 3, Mean: 80, Spread: 20, Leader: "A"},
		{Index: 2, Size: 2, Mean: 80, Spread: 10, Leader: "B"},
	}, stats)
}
