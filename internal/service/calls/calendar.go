package calls

import (
	"sort"
	"time"

	"github.com/tangiwai/cordis-summary/internal/domain"
	"github.com/tangiwai/cordis-summary/internal/pkg/config"
)

// BuildCalendar derives the per-year calendar: one entry per distinct callId
// whose call year matches or whose deadline falls in the year, coloured by
// cluster and sorted by cluster then call id descending, the order the
// calendar is drawn in.
func (s *Service) BuildCalendar(rows []domain.CallRow, year int) []domain.CalendarEntry {
	seen := make(map[string]struct{}, len(rows))
	entries := make([]domain.CalendarEntry, 0, len(rows))

	for _, r := range rows {
		if _, dup := seen[r.CallID]; dup {
			continue
		}
		seen[r.CallID] = struct{}{}

		open, okOpen := parseDay(r.OpenDate)
		close, okClose := parseDay(r.CloseDate)
		if !okOpen || !okClose {
			continue
		}
		if r.CallYear != year && close.Year() != year {
			continue
		}

		colour, ok := s.clusterColours[r.ClusterName]
		if !ok {
			colour = config.DefaultCalendarColour
		}

		entry := domain.CalendarEntry{
			CallID:      r.CallID,
			ClusterCode: r.ClusterCode,
			ClusterName: r.ClusterName,
			Colour:      colour,
			OpenDate:    open,
			CloseDate:   close,
		}
		if s2, ok := parseDay(r.Stage2Date); ok {
			entry.Stage2Date = s2
			entry.HasStage2 = true
		}

		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].ClusterName == entries[j].ClusterName {
			return entries[i].CallID > entries[j].CallID
		}
		return entries[i].ClusterName > entries[j].ClusterName
	})

	return entries
}

func parseDay(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
