package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var idr = message.NewPrinter(language.Indonesian)

// FormatIDR renders an amount in Indonesian rupiah display form, zero
// decimal places, id-ID digit grouping: 500000 -> "Rp500.000".
func FormatIDR(amount float64) string {
	return idr.Sprintf("Rp%.0f", amount)
}

// FormatRoomPrice is the per-night price label on public room cards.
func FormatRoomPrice(price float64) string {
	return FormatIDR(price) + "/malam"
}

// FormatFacilityPrice labels a facility price; an absent price means the
// facility is free to guests.
func FormatFacilityPrice(price *float64) string {
	if price == nil {
		return "Gratis"
	}
	return FormatIDR(*price)
}
