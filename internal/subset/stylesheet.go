package subset

import (
	"regexp"

	"github.com/jonathan/md-icon-localize/internal/cache"
)

// srcPattern matches the woff2 source declaration of the returned @font-face.
var srcPattern = regexp.MustCompile(`src: url\((.*?)\) format\('woff2'\);`)

// localSrc points the stylesheet at the cached font file.
const localSrc = "src: url('" + cache.FontFile + "') format('woff2');"

// LocalizeStylesheet extracts the remote font location from css and returns
// the stylesheet rewritten to load the font from its local file name. Only
// the first declaration is considered. ok is false when none is found.
func LocalizeStylesheet(css string) (rewritten string, fontURL string, ok bool) {
	loc := srcPattern.FindStringSubmatchIndex(css)
	if loc == nil {
		return css, "", false
	}
	fontURL = trimQuotes(css[loc[2]:loc[3]])
	rewritten = css[:loc[0]] + localSrc + css[loc[1]:]
	return rewritten, fontURL, true
}

func trimQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
