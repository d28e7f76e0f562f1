package team1x1

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/brogergvhs/teamx/internal/providers"
)

// Checked in order; the first keyword contained in the text wins.
var statusKeywords = []struct {
	keyword string
	status  providers.Status
}{
	{"مستمرة", providers.StatusOngoing},
	{"متوقف", providers.StatusOnHiatus},
	{"مكتمل", providers.StatusCompleted},
}

func ParseStatus(text string) providers.Status {
	if text == "" {
		return providers.StatusUnknown
	}

	lower := strings.ToLower(text)
	for _, k := range statusKeywords {
		if strings.Contains(lower, strings.ToLower(k.keyword)) {
			return k.status
		}
	}

	return providers.StatusUnknown
}

// yyyy-MM-dd hh:mm:ss, with anything after the seconds ignored.
var chapterDateRe = regexp.MustCompile(`^\s*(\d{4})-(\d{1,2})-(\d{1,2})\s+(\d{1,2}):(\d{1,2}):(\d{1,2})`)

// ParseChapterDate returns the upload time in epoch milliseconds, or 0
// when text does not hold a date in the site's format.
//
// The hour is a 12-hour field written without an AM/PM marker: 12 reads
// as midnight and out-of-range parts roll over into the next unit.
func ParseChapterDate(text string, loc *time.Location) int64 {
	m := chapterDateRe.FindStringSubmatch(text)
	if m == nil {
		return 0
	}

	var n [6]int
	for i := range n {
		v, err := strconv.Atoi(m[i+1])
		if err != nil {
			return 0
		}
		n[i] = v
	}

	hour := n[3]
	if hour == 12 {
		hour = 0
	}
	if loc == nil {
		loc = time.Local
	}

	t := time.Date(n[0], time.Month(n[1]), n[2], hour, n[4], n[5], 0, loc)
	return t.UnixMilli()
}
