package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Platform is a share target. Sharing is simulated: nothing leaves the process.
type Platform string

const (
	PlatformTwitter  Platform = "twitter"
	PlatformLinkedIn Platform = "linkedin"
	PlatformFacebook Platform = "facebook"
	PlatformCopy     Platform = "copy"
)

// Platforms lists the share targets in display order.
var Platforms = []Platform{PlatformTwitter, PlatformLinkedIn, PlatformFacebook, PlatformCopy}

var platformLabels = map[Platform]string{
	PlatformLinkedIn: "LinkedIn",
}

// ParsePlatform accepts any casing of a known platform name.
func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Platforms {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown share platform %q", s)
}

// Label is the human name of the platform.
func (p Platform) Label() string {
	if l, ok := platformLabels[p]; ok {
		return l
	}
	if p == PlatformCopy {
		return "Copy Link"
	}
	// Casers keep state between calls and must not be shared.
	return cases.Title(language.English).String(string(p))
}

// ShareNotice is the transient notification shown after a share action.
func ShareNotice(p Platform) string {
	if p == PlatformCopy {
		return "Link copied to clipboard!"
	}
	return "Shared on " + p.Label() + "!"
}
