package reflection

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultImportanceThreshold is the minimum declared importance for a
// domain to be evaluated at all. A product-tuning constant; scoring always
// uses it regardless of caller overrides elsewhere.
const DefaultImportanceThreshold = 7

// Domain is a named life-value area declared during onboarding.
// Importance is nil when the declared value was absent or non-numeric;
// such domains are never evaluated for missing-domain detection.
type Domain struct {
	Name       string
	Importance *float64
}

// ExtractDomains pulls the declared domain list out of an onboarding
// payload. The payload may be nil, the sectionB/domains nesting may be
// missing or malformed, and individual entries may be scalars; all of
// these degrade to "fewer domains", never to an error.
func ExtractDomains(payload map[string]any) []Domain {
	if payload == nil {
		return nil
	}
	section, ok := payload["sectionB"].(map[string]any)
	if !ok {
		return nil
	}
	raw, ok := section["domains"].([]any)
	if !ok {
		return nil
	}

	var domains []Domain
	for _, entry := range raw {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		domains = append(domains, Domain{
			Name:       stringValue(m["name"]),
			Importance: numericValue(m["importance"]),
		})
	}
	return domains
}

// domainSplitter separates compound domain names: any of ",", "&", "/",
// or the whole word "and" acts as a delimiter.
var domainSplitter = regexp.MustCompile(`[,&/]|\band\b`)

// TokenizeDomainName normalizes a domain name into matchable lowercase
// tokens. "Family & Friends, and community" yields
// ["family", "friends", "community"]. Matching stays lexical; synonyms are
// never recognized.
func TokenizeDomainName(name string) []string {
	parts := domainSplitter.Split(strings.ToLower(name), -1)
	var tokens []string
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			tokens = append(tokens, trimmed)
		}
	}
	return tokens
}

// MissingDomains reports which important domains the check-in text never
// touches. A domain counts as mentioned when any of its name tokens occurs
// as a substring of the lowercased text. Output preserves input order and
// carries the original names, not tokens.
func MissingDomains(text string, domains []Domain, threshold float64) []string {
	lowered := strings.ToLower(text)
	var missing []string
	for _, d := range domains {
		if d.Importance == nil || *d.Importance < threshold {
			continue
		}
		name := strings.TrimSpace(d.Name)
		if name == "" {
			continue
		}
		tokens := TokenizeDomainName(name)
		if len(tokens) == 0 {
			continue
		}
		mentioned := false
		for _, token := range tokens {
			if strings.Contains(lowered, token) {
				mentioned = true
				break
			}
		}
		if !mentioned {
			missing = append(missing, name)
		}
	}
	return missing
}

func stringValue(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}

func numericValue(v any) *float64 {
	switch n := v.(type) {
	case float64:
		return &n
	case int:
		f := float64(n)
		return &f
	case int64:
		f := float64(n)
		return &f
	default:
		return nil
	}
}
