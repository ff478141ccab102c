package utils

import (
	"log"
	"net/url"
	"time"

	"skillup/config"

	"github.com/go-resty/resty/v2"
)

// AvatarURL builds the default profile picture URL for a username
func AvatarURL(username string) string {
	return config.AppConfig.AvatarApiUrl + "?seed=" + url.QueryEscape(username)
}

// WarmUpAvatar asks the avatar service to pre-render the image so the
// first profile view does not pay the generation cost. Failures are only
// logged; the avatar URL stays valid either way.
func WarmUpAvatar(username string) {
	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().Get(AvatarURL(username))
	if err != nil {
		log.Printf("[AVATAR] warm-up request failed for %s: %v", username, err)
		return
	}
	if resp.StatusCode() != 200 {
		log.Printf("[AVATAR] warm-up for %s returned status %d", username, resp.StatusCode())
	}
}
