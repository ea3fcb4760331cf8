package model

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// NoCutoff is the dash rendered for a weekday without a cutoff time.
const NoCutoff = "—"

// WeekCutoffs holds the per-weekday pickup cutoff times of a pharmacy.
// Each value is a local "HH:MM" string; nil means no cutoff that day.
type WeekCutoffs struct {
	Mon *string `json:"mon"`
	Tue *string `json:"tue"`
	Wed *string `json:"wed"`
	Thu *string `json:"thu"`
	Fri *string `json:"fri"`
	Sat *string `json:"sat"`
	Sun *string `json:"sun"`
}

// DayKeys is the fixed weekday order used by forms and summaries.
var DayKeys = [7]string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

var dayAbbrs = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func (w *WeekCutoffs) slots() [7]**string {
	return [7]**string{&w.Mon, &w.Tue, &w.Wed, &w.Thu, &w.Fri, &w.Sat, &w.Sun}
}

// Get returns the cutoff for a day key, or "" when unset or unknown.
func (w WeekCutoffs) Get(key string) string {
	for i, k := range DayKeys {
		if k != key {
			continue
		}
		if v := *w.slots()[i]; v != nil {
			return *v
		}
		return ""
	}
	return ""
}

// Set stores a cutoff for a day key; an empty value clears the day.
// Unknown keys are ignored.
func (w *WeekCutoffs) Set(key, val string) {
	val = strings.TrimSpace(val)
	for i, k := range DayKeys {
		if k != key {
			continue
		}
		slot := w.slots()[i]
		if val == "" {
			*slot = nil
		} else {
			v := val
			*slot = &v
		}
		return
	}
}

// WeekFromForm reads the seven weekday fields out of submitted form
// values. Empty or missing fields become days without a cutoff.
func WeekFromForm(values url.Values) WeekCutoffs {
	var w WeekCutoffs
	for _, key := range DayKeys {
		w.Set(key, values.Get(key))
	}
	return w
}

// Summary renders the week as "Mon 09:00, Tue 09:00, ..., Sun —".
func (w WeekCutoffs) Summary() string {
	parts := make([]string, 0, 7)
	for i := range DayKeys {
		label := NoCutoff
		if v := *w.slots()[i]; v != nil && strings.TrimSpace(*v) != "" {
			label = strings.TrimSpace(*v)
		}
		parts = append(parts, dayAbbrs[i]+" "+label)
	}
	return strings.Join(parts, ", ")
}

// NormalizeHHMM truncates a raw time value ("09:00:00" or "9:05") to a
// zero-padded "HH:MM". Empty input stays empty.
func NormalizeHHMM(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return "", fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	hh, err := strconv.Atoi(parts[0])
	if err != nil || hh < 0 || hh > 23 {
		return "", fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	mm, err := strconv.Atoi(parts[1])
	if err != nil || mm < 0 || mm > 59 {
		return "", fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	return fmt.Sprintf("%02d:%02d", hh, mm), nil
}
