// Package timeago renders durations as coarse human-readable phrases
// ("5 minutes ago"). Wording comes from per-language tables registered
// by primary language subtag; unknown languages fall back to English.
package timeago

import (
	"strconv"
	"strings"
	"time"
)

// Unit is a coarse time bucket used when composing a phrase.
type Unit int

const (
	Minutes Unit = iota
	Hours
	Days
	Weeks
	Months
	Years
)

// Language supplies the wording for one language.
type Language interface {
	// TooLow is the phrase for durations under a minute ("just now").
	TooLow() string
	// Ago is the suffix or prefix marking past time ("ago").
	Ago() string
	// PlaceAgoBefore reports whether Ago precedes the quantity, as in
	// French "il y a 5 minutes".
	PlaceAgoBefore() bool
	// Word returns the unit word agreeing with n ("minute" vs
	// "minutes").
	Word(u Unit, n int64) string
}

// Format renders d in the given language. Durations under one minute
// collapse to the language's TooLow phrase.
func Format(l Language, d time.Duration) string {
	secs := int64(d / time.Second)
	if secs < 60 {
		return l.TooLow()
	}
	mins := secs / 60
	if mins < 60 {
		return compose(l, mins, Minutes)
	}
	hours := mins / 60
	if hours < 60 {
		return compose(l, hours, Hours)
	}
	days := hours / 24
	if days < 30 {
		return compose(l, days, Days)
	}
	weeks := days / 7
	if weeks < 5 {
		return compose(l, weeks, Weeks)
	}
	months := weeks / 4
	if months == 0 {
		months = 1
	}
	if months < 13 {
		return compose(l, months, Months)
	}
	return compose(l, months/12, Years)
}

func compose(l Language, n int64, u Unit) string {
	quantity := strconv.FormatInt(n, 10) + " " + l.Word(u, n)
	if l.PlaceAgoBefore() {
		return l.Ago() + " " + quantity
	}
	return quantity + " " + l.Ago()
}

// ForLanguage returns the wording set registered for a primary language
// subtag, falling back to English.
func ForLanguage(lang string) Language {
	if l, ok := registry[normalize(lang)]; ok {
		return l
	}
	return English
}

// Known reports whether a dedicated wording set exists for lang.
func Known(lang string) bool {
	_, ok := registry[normalize(lang)]
	return ok
}

func normalize(lang string) string {
	lang = strings.ToLower(lang)
	if i := strings.IndexByte(lang, '-'); i > 0 {
		lang = lang[:i]
	}
	return lang
}
