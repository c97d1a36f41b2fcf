package utils

import (
	"net/url"
	"strings"
)

const (
	mapsSearchBase = "https://www.google.com/maps/search/?api=1&query="
	mapsEmbedBase  = "https://www.google.com/maps/embed/v1/place"
)

// QueryEscape escapes more than encodeURIComponent does
var uriComponentFixer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent escapes s the way JavaScript's encodeURIComponent does
func EncodeURIComponent(s string) string {
	return uriComponentFixer.Replace(url.QueryEscape(s))
}

// MapsSearchURL link opening a map search for the address
func MapsSearchURL(address string) string {
	return mapsSearchBase + EncodeURIComponent(address)
}

// MapsEmbedURL embeddable map of the address
func MapsEmbedURL(apiKey, address string) string {
	return mapsEmbedBase + "?key=" + EncodeURIComponent(apiKey) + "&q=" + EncodeURIComponent(address)
}

// DialURI tel: link for phone, empty when there is no phone
func DialURI(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}
	return "tel:" + strings.ReplaceAll(phone, " ", "")
}
