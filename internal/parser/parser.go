package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Match holds the fields extracted from a single SSH failure line.
// Timestamp is nil when the month/day/time fields do not combine into a
// valid calendar date (e.g. Feb 30); the line still counts as a match.
type Match struct {
	IP        string
	Timestamp *time.Time
}

// failurePattern targets the classic auth.log failure lines, e.g.
//
//	Apr 10 12:34:56 host sshd[1234]: Failed password for invalid user admin from 1.2.3.4 port 5555 ssh2
//	Apr 10 12:35:01 host sshd[1234]: Failed password for user root from 5.6.7.8 port 2222 ssh2
var failurePattern = regexp.MustCompile(
	`(?P<month>\w{3})\s+(?P<day>\d{1,2})\s+(?P<time>\d{2}:\d{2}:\d{2}).*sshd.*(?:Failed password|Invalid user).*from\s+(?P<ip>\d{1,3}(?:\.\d{1,3}){3})`,
)

// months maps syslog month abbreviations to calendar months. Anything
// else resolves to 0 and fails date construction.
var months = map[string]time.Month{
	"Jan": time.January, "Feb": time.February, "Mar": time.March,
	"Apr": time.April, "May": time.May, "Jun": time.June,
	"Jul": time.July, "Aug": time.August, "Sep": time.September,
	"Oct": time.October, "Nov": time.November, "Dec": time.December,
}

// Parser extracts failed SSH login attempts from raw auth.log lines.
// Syslog timestamps carry no year, so the reference year is injected at
// construction time to keep parsing deterministic.
type Parser struct {
	year int
}

// New creates a parser that assumes the current calendar year.
func New() *Parser {
	return NewWithYear(time.Now().Year())
}

// NewWithYear creates a parser with an explicit reference year.
func NewWithYear(year int) *Parser {
	return &Parser{year: year}
}

// Year returns the reference year used for timestamp construction.
func (p *Parser) Year() int {
	return p.year
}

// Parse attempts to extract an SSH failure event from a raw log line.
// It returns (nil, false) when the line does not match the failure
// pattern; this is the common case and not an error.
func (p *Parser) Parse(line string) (*Match, bool) {
	m := failurePattern.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}

	match := &Match{
		IP:        m[failurePattern.SubexpIndex("ip")],
		Timestamp: p.buildTimestamp(m[failurePattern.SubexpIndex("month")], m[failurePattern.SubexpIndex("day")], m[failurePattern.SubexpIndex("time")]),
	}
	return match, true
}

// buildTimestamp combines month/day/time with the reference year.
// Returns nil when the fields do not form a valid calendar date.
func (p *Parser) buildTimestamp(monthStr, dayStr, timeStr string) *time.Time {
	month := months[monthStr]
	if month == 0 {
		return nil
	}

	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return nil
	}

	parts := strings.Split(timeStr, ":")
	if len(parts) != 3 {
		return nil
	}
	hour, _ := strconv.Atoi(parts[0])
	minute, _ := strconv.Atoi(parts[1])
	second, _ := strconv.Atoi(parts[2])

	ts := time.Date(p.year, month, day, hour, minute, second, 0, time.UTC)

	// time.Date normalizes out-of-range components (Feb 30 becomes
	// Mar 2), so verify nothing moved.
	if ts.Month() != month || ts.Day() != day || ts.Hour() != hour ||
		ts.Minute() != minute || ts.Second() != second {
		return nil
	}

	return &ts
}
