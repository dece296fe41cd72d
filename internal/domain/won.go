package domain

import (
	"errors"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrInvalidAmount is returned when an amount cannot be parsed.
var ErrInvalidAmount = errors.New("invalid won amount")

var wonPrinter = message.NewPrinter(language.Korean)

// Won is an amount of Korean won.
type Won int64

// ParseWon parses an amount written with thousands separators, e.g. "18,350,000".
func ParseWon(s string) (Won, error) {
	digits := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return Won(n), nil
}

// String formats the amount with thousands separators and no unit.
func (w Won) String() string {
	return wonPrinter.Sprintf("%d", int64(w))
}

// FormatWon formats the amount followed by the 원 unit.
func FormatWon(w Won) string {
	return w.String() + "원"
}
