package usecase

import "time"

// Log prefixes
const (
	LogPrefixProcess = "internal.notification.usecase.Process"
	LogPrefixDeliver = "internal.notification.usecase.deliver"
)

// Launchpad defaults
const (
	DefaultWebURL  = "https://launchpad.net"
	DefaultCodeURL = "https://code.launchpad.net"
	DefaultGitURL  = "https://git.launchpad.net"
)

const DefaultDeliveryTimeout = 10 * time.Second

// Formatting
const (
	diffSeparator  = "\n\t-"
	refPathSegment = "/+ref/"
	commitQuery    = "/commit/?id="
	nullValue      = "null"
)
