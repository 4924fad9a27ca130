package errors

import (
	"net/url"
	"strings"
	"unicode"
)

const (
	maxTitleLength = 512
	maxPathLength  = 500
)

// checkText rejects blank values, values longer than limit bytes and
// values holding control characters.
func checkText(code Code, field, value string, limit int) error {
	switch {
	case strings.TrimSpace(value) == "":
		return New(code, "%s cannot be empty", field)
	case len(value) > limit:
		return New(code, "%s too long (max %d characters)", field, limit)
	case strings.IndexFunc(value, unicode.IsControl) >= 0:
		return New(code, "%s contains control characters", field)
	}
	return nil
}

// ValidateTitle checks a book title or author read from the data file.
func ValidateTitle(field, value string) error {
	return checkText(ErrCodeInvalidInput, field, value, maxTitleLength)
}

// ValidatePath checks a book data path given on the command line or in the
// config file.
func ValidatePath(path string) error {
	return checkText(ErrCodeInvalidPath, "path", path, maxPathLength)
}

// ValidateURL accepts absolute http and https URLs with a host.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return Wrap(ErrCodeInvalidInput, err, "invalid URL %q", rawURL)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return New(ErrCodeInvalidInput, "URL must be http(s) with a host: %q", rawURL)
	}
	return nil
}

// ValidateHexColor accepts "#rrggbb", the form cover colours are stored in.
func ValidateHexColor(color string) error {
	valid := len(color) == 7 && color[0] == '#' &&
		strings.Trim(color[1:], "0123456789abcdefABCDEF") == ""
	if !valid {
		return New(ErrCodeInvalidColor, "invalid hex color %q (want #rrggbb)", color)
	}
	return nil
}
