// Package media recognises Facebook video links and builds their embed URLs.
package media

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
)

var ErrInvalidFacebookURL = errors.New("URL Facebook tidak valid. Pastikan URL adalah link video Facebook yang benar.")

var facebookPatterns = []*regexp.Regexp{
	regexp.MustCompile(`facebook\.com/.*/videos/(\d+)`),
	regexp.MustCompile(`facebook\.com/watch/?\?v=(\d+)`),
	regexp.MustCompile(`fb\.watch/([a-zA-Z0-9]+)`),
	regexp.MustCompile(`facebook\.com/.*/posts/(\d+)`),
}

// Video is a recognised Facebook video link.
type Video struct {
	VideoID     string `json:"video_id"`
	OriginalURL string `json:"original_url"`
	EmbedURL    string `json:"embed_url"`
}

// ParseFacebook matches raw against the known Facebook video URL shapes.
func ParseFacebook(raw string) (Video, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Video{}, ErrInvalidFacebookURL
	}
	for _, p := range facebookPatterns {
		if m := p.FindStringSubmatch(raw); m != nil {
			return Video{VideoID: m[1], OriginalURL: raw, EmbedURL: EmbedURL(raw)}, nil
		}
	}
	return Video{}, ErrInvalidFacebookURL
}

// EmbedURL wraps a Facebook video link in the video plugin URL.
func EmbedURL(raw string) string {
	return "https://www.facebook.com/plugins/video.php?href=" + url.QueryEscape(raw) +
		"&width=500&show_text=false&height=280&appId"
}
