package util

import (
	"regexp"
	"strings"
)

var (
	scriptBlockRe = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	styleBlockRe  = regexp.MustCompile(`(?is)<style\b.*?</style>`)
	tagRe         = regexp.MustCompile(`<[^>]+>`)
	spaceRunRe    = regexp.MustCompile(`[ \t\r\f\v\n]+`)
	newlineRunRe  = regexp.MustCompile(`\n+`)
)

// entities is the fixed set of named entities decoded by SanitizeText, applied
// in order. Anything else (numeric references etc.) passes through untouched.
var entities = [][2]string{
	{"&nbsp;", " "},
	{"&amp;", "&"},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&quot;", `"`},
	{"&#39;", "'"},
	{"&rsquo;", "'"},
	{"&lsquo;", "'"},
	{"&rdquo;", `"`},
	{"&ldquo;", `"`},
}

// SanitizeText normalizes text pulled out of arbitrary job-posting markup.
// Script and style blocks are dropped with their contents, remaining tags are
// replaced by spaces, the fixed entity set is decoded, and whitespace runs
// collapse to a single space.
func SanitizeText(s string) string {
	if s == "" {
		return ""
	}
	s = scriptBlockRe.ReplaceAllString(s, "")
	s = styleBlockRe.ReplaceAllString(s, "")
	s = tagRe.ReplaceAllString(s, " ")
	for _, e := range entities {
		s = strings.ReplaceAll(s, e[0], e[1])
	}
	s = spaceRunRe.ReplaceAllString(s, " ")
	s = newlineRunRe.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

// CleanText collapses whitespace in short selector-extracted strings.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}
