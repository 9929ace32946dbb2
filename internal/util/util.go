package util

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// NormalizeEmail canonicalizes an email address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// GenerateNumericCode returns a cryptographically random code of n decimal digits.
func GenerateNumericCode(n int) (string, error) {
	var sb strings.Builder
	for range n {
		digit, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", errors.Wrap(err, "failed to generate random digit")
		}
		sb.WriteString(digit.String())
	}

	return sb.String(), nil
}

// GenerateSecureToken returns a cryptographically random hex token of 2*n characters.
func GenerateSecureToken(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate random token")
	}

	return hex.EncodeToString(buf), nil
}

// ParseDeviceInfo derives a short "Type - OS - Browser" label from a User-Agent string.
func ParseDeviceInfo(userAgent string) string {
	browser := "Unknown"
	switch {
	case strings.Contains(userAgent, "Edg"):
		browser = "Edge"
	case strings.Contains(userAgent, "OPR"), strings.Contains(userAgent, "Opera"):
		browser = "Opera"
	case strings.Contains(userAgent, "Chrome"):
		browser = "Chrome"
	case strings.Contains(userAgent, "Firefox"):
		browser = "Firefox"
	case strings.Contains(userAgent, "Safari"):
		browser = "Safari"
	}

	os := "Unknown"
	switch {
	case strings.Contains(userAgent, "Windows"):
		os = "Windows"
	case strings.Contains(userAgent, "Android"):
		os = "Android"
	case strings.Contains(userAgent, "iPhone"), strings.Contains(userAgent, "iPad"), strings.Contains(userAgent, "iOS"):
		os = "iOS"
	case strings.Contains(userAgent, "Mac"):
		os = "MacOS"
	case strings.Contains(userAgent, "Linux"):
		os = "Linux"
	}

	deviceType := "Desktop"
	switch {
	case strings.Contains(userAgent, "Tablet"), strings.Contains(userAgent, "iPad"):
		deviceType = "Tablet"
	case strings.Contains(userAgent, "Mobile"):
		deviceType = "Mobile"
	}

	return fmt.Sprintf("%s - %s - %s", deviceType, os, browser)
}
