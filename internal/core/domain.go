package core

import (
	"errors"
	"time"
)

const (
	WorkFull    WorkType = "FULL"
	WorkHalf    WorkType = "HALF"
	WorkHourly  WorkType = "HOURLY"
	WorkAdvance WorkType = "ADVANCE"
	WorkOff     WorkType = "OFF"
)

const (
	RateDaily  RateType = "DAILY"
	RateHourly RateType = "HOURLY"
)

// DateLayout is the canonical YYYY-MM-DD form used as the entry key.
const DateLayout = "2006-01-02"

type (
	WorkType string

	RateType string

	CountryCode string

	// DayEntry is one calendar day's record, keyed by its date string.
	// CustomHours is meaningful only for HOURLY entries, AdvanceAmount
	// only for ADVANCE entries; aggregation ignores them otherwise.
	DayEntry struct {
		Date          string   `json:"date"`
		Type          WorkType `json:"type"`
		CustomHours   float64  `json:"customHours,omitempty"`
		AdvanceAmount float64  `json:"advanceAmount,omitempty"`
		Note          string   `json:"note,omitempty"`
	}

	// AppSettings is the full persisted settings record. Fields beyond
	// rate/rateType/standardHours/country belong to the surrounding UI
	// shell and are round-tripped without interpretation.
	AppSettings struct {
		UserName           string      `json:"userName"`
		IsSetupCompleted   bool        `json:"isSetupCompleted"`
		Rate               float64     `json:"rate"`
		RateType           RateType    `json:"rateType"`
		Currency           string      `json:"currency"`
		StandardHours      float64     `json:"standardHours"`
		Country            CountryCode `json:"country"`
		Password           string      `json:"password"`
		RecoveryKey        string      `json:"recoveryKey"`
		LifetimeEntryCount int         `json:"lifetimeEntryCount"`
		PremiumExpiry      int64       `json:"premiumExpiry,omitempty"` // unix milliseconds, 0 = never
	}

	// MonthlyStats is derived output, recomputed on demand and never persisted.
	MonthlyStats struct {
		TotalFullDays int
		TotalHalfDays int
		TotalHours    float64
		TotalAdvances float64
		GrossEarnings float64
		NetPayable    float64
		MonthLabel    string
	}
)

var (
	ErrInvalidDate     = errors.New("invalid date")
	ErrUnknownWorkType = errors.New("unknown work type")
	ErrInvalidHours    = errors.New("invalid hours")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrFutureDate      = errors.New("future date")
	ErrInvalidBackup   = errors.New("invalid backup file")
)

// NewDayEntry builds a FULL, HALF or OFF entry. Use NewHourlyEntry and
// NewAdvanceEntry for the variants that carry a number.
func NewDayEntry(date string, t WorkType, note string) DayEntry {
	return DayEntry{Date: date, Type: t, Note: note}
}

// NewHourlyEntry builds an HOURLY entry with an explicit worked-hours count.
func NewHourlyEntry(date string, hours float64, note string) DayEntry {
	return DayEntry{Date: date, Type: WorkHourly, CustomHours: hours, Note: note}
}

// NewAdvanceEntry builds an ADVANCE entry with a cash amount.
func NewAdvanceEntry(date string, amount float64, note string) DayEntry {
	return DayEntry{Date: date, Type: WorkAdvance, AdvanceAmount: amount, Note: note}
}

func (t WorkType) Valid() bool {
	switch t {
	case WorkFull, WorkHalf, WorkHourly, WorkAdvance, WorkOff:
		return true
	}
	return false
}

func (t RateType) Valid() bool {
	return t == RateDaily || t == RateHourly
}

func (e DayEntry) Validate() error {
	if _, err := time.Parse(DateLayout, e.Date); err != nil {
		return ErrInvalidDate
	}
	if !e.Type.Valid() {
		return ErrUnknownWorkType
	}
	if e.Type == WorkHourly && e.CustomHours <= 0 {
		return ErrInvalidHours
	}
	if e.Type == WorkAdvance && e.AdvanceAmount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// InMonth reports whether the entry belongs to the given year and month.
// Membership is decided by the stored year/month components of the date
// key, not by date-range containment.
func (e DayEntry) InMonth(year, month int) bool {
	y, m := splitDateKey(e.Date)
	return y == year && m == month
}

func splitDateKey(date string) (year, month int) {
	if len(date) < 7 || date[4] != '-' {
		return 0, 0
	}
	for _, r := range date[:4] {
		if r < '0' || r > '9' {
			return 0, 0
		}
		year = year*10 + int(r-'0')
	}
	for _, r := range date[5:7] {
		if r < '0' || r > '9' {
			return 0, 0
		}
		month = month*10 + int(r-'0')
	}
	return year, month
}

// PremiumActive reports whether a premium expiry is set and still in the
// future. A zero or unset expiry means free tier.
func (s AppSettings) PremiumActive(now time.Time) bool {
	if s.PremiumExpiry == 0 {
		return false
	}
	return s.PremiumExpiry > now.UnixMilli()
}
