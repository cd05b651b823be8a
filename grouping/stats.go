package grouping

import "groupform-server-go/models"

// Stats computes size, mean score, score spread and leader for each group.
func Stats(assignment models.Assignment) []models.GroupStats {
	stats := make([]models.GroupStats, 0, len(assignment))
	for i, g := range assignment {
		st := models.GroupStats{Index: i + 1, Size: len(g)}
		if len(g) == 0 {
			stats = append(stats, st)
			continue
		}
		rows := Label(g)
		var sum float64
		for _, r := range rows {
			sum += r.Score
		}
		st.Mean = sum / float64(len(rows))
		st.Spread = rows[0].Score - rows[len(rows)-1].Score
		st.Leader = rows[0].Name
		stats = append(stats, st)
	}
	return stats
}
