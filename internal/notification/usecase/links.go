package usecase

import "strings"

// joinBase joins a base URL and a path fragment with exactly one slash.
func joinBase(base, fragment string) string {
	if fragment == "" {
		return base
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(fragment, "/")
}

// displayName is a Launchpad path as shown to people: without the leading slash.
func displayName(fragment string) string {
	return strings.TrimPrefix(fragment, "/")
}

// lastSegment returns what follows the last slash, e.g. the branch of refs/heads/main.
func lastSegment(path string) string {
	return path[strings.LastIndex(path, "/")+1:]
}

func refURL(repoURL, branch string) string {
	return repoURL + refPathSegment + branch
}

// link renders a markdown link, or the bare text when url is empty.
func link(text, url string) string {
	if url == "" {
		return text
	}
	return "[" + text + "](" + url + ")"
}

func codeLink(text, url string) string {
	return link("`"+text+"`", url)
}
