// Package expiry derives days-left, classification and display order for
// food items. Nothing here reads the wall clock: callers pass today.
package expiry

import (
	"Food-Waste-Tracker/domain"
	"Food-Waste-Tracker/entities"
	"sort"
	"time"
)

// SoonThresholdDays is the last day count that still counts as expiring soon.
const SoonThresholdDays = 3

const secondsPerDay = 24 * 60 * 60

type Classification string

const (
	Unknown      Classification = "Unknown"
	Expired      Classification = "Expired"
	ExpiringSoon Classification = "ExpiringSoon"
	Normal       Classification = "Normal"
)

// Color is the highlight used when rendering a row of this classification.
func (c Classification) Color() string {
	switch c {
	case Expired:
		return "#ff4d4d"
	case ExpiringSoon:
		return "#ab5000"
	case Normal:
		return "#00611a"
	default:
		return ""
	}
}

func (c Classification) Label() string {
	switch c {
	case ExpiringSoon:
		return "Expiring Soon"
	default:
		return string(c)
	}
}

// DaysLeft is a signed day count, or unknown when the expiry date could not
// be parsed. The zero value is unknown.
type DaysLeft struct {
	Days  int
	Known bool
}

func KnownDays(days int) DaysLeft {
	return DaysLeft{Days: days, Known: true}
}

// Ptr returns nil for unknown so JSON renders null.
func (d DaysLeft) Ptr() *int {
	if !d.Known {
		return nil
	}
	days := d.Days
	return &days
}

type Entry struct {
	Item           entities.FoodItem
	DaysLeft       DaysLeft
	Classification Classification
}

type Views struct {
	Expired      []Entry
	ExpiringSoon []Entry
	All          []Entry
}

type Stats struct {
	Total        int
	Expired      int
	ExpiringSoon int
	Normal       int
	Unknown      int
}

// ComputeDaysLeft returns expiryDate minus today in calendar days. Only
// today's calendar date matters, not its time of day or location offset.
func ComputeDaysLeft(expiryDate string, today time.Time) DaysLeft {
	expiry, err := time.Parse(domain.DateLayout, expiryDate)
	if err != nil {
		return DaysLeft{}
	}

	y, m, d := today.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	return KnownDays(int((expiry.Unix() - start.Unix()) / secondsPerDay))
}

func Classify(daysLeft DaysLeft) Classification {
	switch {
	case !daysLeft.Known:
		return Unknown
	case daysLeft.Days < 0:
		return Expired
	case daysLeft.Days <= SoonThresholdDays:
		return ExpiringSoon
	default:
		return Normal
	}
}

// OrderForDisplay sorts ascending by days left with unknown dates last.
// Equal keys keep their input order.
func OrderForDisplay(items []entities.FoodItem, today time.Time) []Entry {
	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		daysLeft := ComputeDaysLeft(item.ExpiryDate, today)
		entries = append(entries, Entry{
			Item:           item,
			DaysLeft:       daysLeft,
			Classification: Classify(daysLeft),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].DaysLeft, entries[j].DaysLeft
		if a.Known != b.Known {
			return a.Known
		}
		return a.Known && a.Days < b.Days
	})

	return entries
}

func Partition(entries []Entry) Views {
	views := Views{
		Expired:      []Entry{},
		ExpiringSoon: []Entry{},
		All:          entries,
	}
	for _, entry := range entries {
		switch entry.Classification {
		case Expired:
			views.Expired = append(views.Expired, entry)
		case ExpiringSoon:
			views.ExpiringSoon = append(views.ExpiringSoon, entry)
		}
	}
	return views
}

func Summarize(entries []Entry) Stats {
	stats := Stats{Total: len(entries)}
	for _, entry := range entries {
		switch entry.Classification {
		case Expired:
			stats.Expired++
		case ExpiringSoon:
			stats.ExpiringSoon++
		case Normal:
			stats.Normal++
		default:
			stats.Unknown++
		}
	}
	return stats
}
