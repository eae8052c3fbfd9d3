package repository

import (
	"os"
	"strconv"
	"time"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func stringToFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

// Timestamps are stored as RFC3339Nano strings, except deadline-style fields
// compared lexicographically in filter expressions, which use second
// precision so string order matches time order.

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func formatDeadline(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseDeadline(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}
