package view

import (
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	nethtml "golang.org/x/net/html"
)

// HTML is markup that may be inserted into a page as-is.
type HTML string

// Text escapes s so it is displayed literally.
func Text(s string) HTML {
	return HTML(html.EscapeString(s))
}

// LoginLink is the styled link to the login page shown to signed-out users.
const LoginLink HTML = `<a href="` + PathLogin + `" style="border-radius: 0.5em; background-color: var(--pico-primary-background); color: var(--pico-contrast); text-decoration: none; padding: 0.2em;">Log in</a>`

// MessagePolicy decides how text received from the server is turned
// into page content.
type MessagePolicy string

const (
	// PolicyEscape shows server text literally. Default.
	PolicyEscape MessagePolicy = "escape"
	// PolicySanitize keeps harmless formatting and strips scripts and handlers.
	PolicySanitize MessagePolicy = "sanitize"
	// PolicyTrust inserts server text verbatim. Only for fully trusted servers.
	PolicyTrust MessagePolicy = "trust"
)

var ugcPolicy = bluemonday.UGCPolicy()

// ParseMessagePolicy accepts "escape", "sanitize" or "trust"; an empty
// string selects PolicyEscape.
func ParseMessagePolicy(s string) (MessagePolicy, error) {
	switch p := MessagePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PolicyEscape, nil
	case PolicyEscape, PolicySanitize, PolicyTrust:
		return p, nil
	default:
		return "", fmt.Errorf("unknown message policy %q", s)
	}
}

// UnmarshalText lets config loaders decode the policy by name.
func (p *MessagePolicy) UnmarshalText(b []byte) error {
	parsed, err := ParseMessagePolicy(string(b))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Render converts server text into page content according to p.
// Unknown policies fall back to escaping.
func (p MessagePolicy) Render(msg string) HTML {
	switch p {
	case PolicyTrust:
		return HTML(msg)
	case PolicySanitize:
		return HTML(ugcPolicy.Sanitize(msg))
	default:
		return Text(msg)
	}
}

// PlainText flattens content for displays without HTML support. Link
// targets are kept in parentheses after the link text and <br> becomes
// a newline.
func PlainText(content HTML) string {
	var (
		b     strings.Builder
		hrefs []string
	)

	z := nethtml.NewTokenizer(strings.NewReader(string(content)))
	for {
		switch z.Next() {
		case nethtml.ErrorToken:
			return strings.TrimSpace(b.String())
		case nethtml.TextToken:
			b.Write(z.Text())
		case nethtml.StartTagToken, nethtml.SelfClosingTagToken:
			tok := z.Token()
			switch tok.Data {
			case "br":
				b.WriteByte('\n')
			case "a":
				href := ""
				for _, attr := range tok.Attr {
					if attr.Key == "href" {
						href = attr.Val
					}
				}
				hrefs = append(hrefs, href)
			}
		case nethtml.EndTagToken:
			tok := z.Token()
			if tok.Data == "a" && len(hrefs) > 0 {
				href := hrefs[len(hrefs)-1]
				hrefs = hrefs[:len(hrefs)-1]
				if href != "" {
					fmt.Fprintf(&b, " (%s)", href)
				}
			}
		}
	}
}
