package grouping

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"unicode"

	"groupform-server-go/models"
)

// Label orders a group by descending score and marks the first member as
// leader. The same rows feed the text render and the spreadsheet export.
func Label(group models.Group) []models.Row {
	ranked := rank(group)
	rows := make([]models.Row, len(ranked))
	for i, s := range ranked {
		role := models.RoleMember
		if i == 0 {
			role = models.RoleLeader
		}
		rows[i] = models.Row{Name: s.Name, Score: s.Score, Role: role}
	}
	return rows
}

// Title is the display name of the group at a 1-based index.
func Title(index int) string {
	return fmt.Sprintf("Group %d", index)
}

// Tables labels every group of an assignment, in order.
func Tables(assignment models.Assignment) []models.GroupTable {
	tables := make([]models.GroupTable, len(assignment))
	for i, g := range assignment {
		tables[i] = models.GroupTable{
			Index: i + 1,
			Title: Title(i + 1),
			Rows:  Label(g),
		}
	}
	return tables
}

// Render produces the text block describing all groups. Each group starts with
// a "Group N:" header followed by a name/score/role table; groups are
// separated by a blank line. Control characters in names are shown as spaces
// so each member stays on exactly one line. An empty assignment renders as "".
func Render(assignment models.Assignment) string {
	return RenderTables(Tables(assignment))
}

// RenderTables is Render for already labeled tables.
func RenderTables(tables []models.GroupTable) string {
	blocks := make([]string, len(tables))
	for i, t := range tables {
		var b strings.Builder
		b.WriteString(t.Title)
		b.WriteString(":\n")
		writeRows(&b, t.Rows)
		blocks[i] = b.String()
	}
	return strings.Join(blocks, "\n")
}

func writeRows(b *strings.Builder, rows []models.Row) {
	tw := tabwriter.NewWriter(b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "name\tscore\trole")
	for _, r := range rows {
		if r.Role == models.RoleMember {
			fmt.Fprintf(tw, "%s\t%s\n", cellText(r.Name), FormatScore(r.Score))
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", cellText(r.Name), FormatScore(r.Score), r.Role)
	}
	// Flushing into a strings.Builder cannot fail.
	_ = tw.Flush()
}

// cellText keeps a value on one table cell: tabs, newlines and other control
// characters become spaces.
func cellText(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
}

// FormatScore prints a score in its shortest form: 90, 87.5.
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}
