// Package locale holds the fixed per-country policy tables consumed by the
// calendar layout and pay aggregation engines: default currency, standard
// working hours, week-start convention and localized calendar labels.
//
// The table is static; there is no dynamic dispatch. Lookups for unknown
// country codes fall back to the default country rather than failing.
package locale

import (
	"time"

	"worklog/internal/core"
)

// Supported country codes.
const (
	Turkey       core.CountryCode = "TR"
	UnitedStates core.CountryCode = "US"
	Germany      core.CountryCode = "DE"
	China        core.CountryCode = "CN"
	India        core.CountryCode = "IN"
	Indonesia    core.CountryCode = "ID"
	Russia       core.CountryCode = "RU"
	SaudiArabia  core.CountryCode = "SA"
	Mexico       core.CountryCode = "MX"
	Iran         core.CountryCode = "IR"
)

// DefaultCountry is the fallback for unrecognized codes.
const DefaultCountry = Turkey

// Policy is one country's calendar and pay conventions. Months holds the
// twelve localized month names; Weekdays holds the seven weekday headers in
// display order, starting at the country's week-start day.
type Policy struct {
	Currency      string
	StandardHours float64
	WeekStart     time.Weekday
	Months        [12]string
	Weekdays      [7]string
}

var policies = map[core.CountryCode]Policy{
	Turkey: {
		Currency:      "TL",
		StandardHours: 9,
		WeekStart:     time.Monday,
		Months:        [12]string{"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran", "Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık"},
		Weekdays:      [7]string{"Pzt", "Sal", "Çar", "Per", "Cum", "Cmt", "Paz"},
	},
	UnitedStates: {
		Currency:      "USD",
		StandardHours: 8,
		WeekStart:     time.Sunday,
		Months:        [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
		Weekdays:      [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	},
	Germany: {
		Currency:      "EUR",
		StandardHours: 8,
		WeekStart:     time.Monday,
		Months:        [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
		Weekdays:      [7]string{"Mo", "Di", "Mi", "Do", "Fr", "Sa", "So"},
	},
	China: {
		Currency:      "CNY",
		StandardHours: 8,
		WeekStart:     time.Sunday,
		Months:        [12]string{"一月", "二月", "三月", "四月", "五月", "六月", "七月", "八月", "九月", "十月", "十一月", "十二月"},
		Weekdays:      [7]string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"},
	},
	India: {
		Currency:      "INR",
		StandardHours: 9,
		WeekStart:     time.Sunday,
		Months:        [12]string{"जनवरी", "फरवरी", "मार्च", "अप्रैल", "मई", "जून", "जुलाई", "अगस्त", "सितंबर", "अक्टूबर", "नवंबर", "दिसंबर"},
		Weekdays:      [7]string{"रवि", "सोम", "मंगल", "बुध", "गुरु", "शुक्र", "शनि"},
	},
	Indonesia: {
		Currency:      "IDR",
		StandardHours: 8,
		WeekStart:     time.Monday,
		Months:        [12]string{"Januari", "Februari", "Maret", "April", "Mei", "Juni", "Juli", "Agustus", "September", "Oktober", "November", "Desember"},
		Weekdays:      [7]string{"Sen", "Sel", "Rab", "Kam", "Jum", "Sab", "Min"},
	},
	Russia: {
		Currency:      "RUB",
		StandardHours: 8,
		WeekStart:     time.Monday,
		Months:        [12]string{"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь", "Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь"},
		Weekdays:      [7]string{"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"},
	},
	SaudiArabia: {
		Currency:      "SAR",
		StandardHours: 8,
		WeekStart:     time.Sunday,
		Months:        [12]string{"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو", "يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر"},
		Weekdays:      [7]string{"الأحد", "الاثنين", "الثلاثاء", "الأربعاء", "الخميس", "الجمعة", "السبت"},
	},
	Mexico: {
		Currency:      "MXN",
		StandardHours: 8,
		WeekStart:     time.Sunday,
		Months:        [12]string{"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio", "Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre"},
		Weekdays:      [7]string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"},
	},
	Iran: {
		Currency:      "IRR",
		StandardHours: 8,
		WeekStart:     time.Sunday,
		// Gregorian month names in Farsi
		Months:   [12]string{"ژانویه", "فوریه", "مارس", "آوریل", "مه", "ژوئن", "ژوئیه", "اوت", "سپتامبر", "اکتبر", "نوامبر", "دسامبر"},
		Weekdays: [7]string{"یک", "دو", "سه", "چهار", "پنج", "جمعه", "شنبه"},
	},
}

// Lookup returns the policy for a country code, falling back to the default
// country's table when the code is not recognized.
func Lookup(code core.CountryCode) Policy {
	if p, ok := policies[code]; ok {
		return p
	}
	return policies[DefaultCountry]
}

// Known reports whether the code has its own policy entry.
func Known(code core.CountryCode) bool {
	_, ok := policies[code]
	return ok
}

// Codes returns all supported country codes in a stable order.
func Codes() []core.CountryCode {
	return []core.CountryCode{
		Turkey, UnitedStates, Germany, China, India,
		Indonesia, Russia, SaudiArabia, Mexico, Iran,
	}
}

// MonthLabel returns the localized full month name for month 1-12.
// Out-of-range months yield an empty label rather than a panic.
func MonthLabel(code core.CountryCode, month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return Lookup(code).Months[month-1]
}
