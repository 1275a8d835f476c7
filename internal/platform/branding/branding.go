// Package branding holds product naming shared by pages and commands.
package branding

import "strings"

// AppName is the product name shown in titles.
const AppName = "Apollo Icons"

const titleSeparator = " | "

// PageTitle appends the product name to title unless it is already there.
func PageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" || title == AppName {
		return AppName
	}
	if strings.HasSuffix(title, titleSeparator+AppName) {
		return title
	}
	title = strings.TrimSuffix(title, " - "+AppName)
	return title + titleSeparator + AppName
}
