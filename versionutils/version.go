package versionutils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
)

// Versions take the form YYMM.BBBB: a two digit year, a two digit month and a
// zero padded build counter that resets whenever the stamp changes.
//
// Example: the 5th release of March 2021 is 2103.0005
type CalendarVersion struct {
	Stamp   string
	Counter int
}

const (
	stampSeparator = "."
	counterWidth   = 4
)

var calendarRegex = regexp.MustCompile(`^[0-9]{4}[.][0-9]{4,}$`)

// clock is package level so tests can pin the current month
var clock clockwork.Clock = clockwork.NewRealClock()

func SetClock(c clockwork.Clock) {
	clock = c
}

func NewCalendarVersion(stamp string, counter int) *CalendarVersion {
	return &CalendarVersion{
		Stamp:   stamp,
		Counter: counter,
	}
}

func (v *CalendarVersion) String() string {
	return fmt.Sprintf("%s%s%0*d", v.Stamp, stampSeparator, counterWidth, v.Counter)
}

// ReleaseName is the display name of the release cut for this version.
func (v *CalendarVersion) ReleaseName() string {
	return "v" + v.String()
}

// Next returns the version that follows v when released at now.
func (v *CalendarVersion) Next(now time.Time) *CalendarVersion {
	stamp := StampFor(now)
	if stamp != v.Stamp {
		return NewCalendarVersion(stamp, 1)
	}
	return NewCalendarVersion(stamp, v.Counter+1)
}

// StampFor renders the YYMM stamp of t.
func StampFor(t time.Time) string {
	return fmt.Sprintf("%02d%02d", t.Year()%100, int(t.Month()))
}

// NextVersion computes the next version from the previous release tag using the current date.
func NextVersion(previous string) string {
	return NextVersionAt(previous, clock.Now())
}

// NextVersionAt never fails: an unparsable counter counts as 0.
func NextVersionAt(previous string, now time.Time) string {
	return NextCalendarVersionAt(previous, now).String()
}

func NextCalendarVersionAt(previous string, now time.Time) *CalendarVersion {
	return parseLenient(previous).Next(now)
}

func parseLenient(tag string) *CalendarVersion {
	fields := strings.Split(tag, stampSeparator)
	counter := ""
	if len(fields) > 1 {
		counter = fields[1]
	}
	return NewCalendarVersion(fields[0], leadingInt(counter))
}

// leadingInt reads an optionally signed run of digits from the start of s, ignoring the rest.
// Anything that does not start with digits, or is negative, counts as 0.
func leadingInt(s string) int {
	s = strings.TrimLeft(s, " \t\n\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func MatchesCalendarRegex(tag string) bool {
	return calendarRegex.MatchString(tag)
}

func ParseCalendarVersion(tag string) (*CalendarVersion, error) {
	if !MatchesCalendarRegex(tag) {
		return nil, errors.Errorf("Tag %s is not a valid calendar version, must be of the form YYMM.BBBB", tag)
	}
	stamp, counter, _ := strings.Cut(tag, stampSeparator)
	month, err := strconv.Atoi(stamp[2:])
	if err != nil || month < 1 || month > 12 {
		return nil, errors.Errorf("Month %s is not valid", stamp[2:])
	}
	n, err := strconv.Atoi(counter)
	if err != nil {
		return nil, errors.Errorf("Build counter %s is not valid", counter)
	}
	return NewCalendarVersion(stamp, n), nil
}
