package util

import "github.com/PuerkitoBio/goquery"

// FirstText tries each selector in order inside root and returns the first
// non-empty cleaned text.
func FirstText(root *goquery.Selection, candidates ...string) string {
	for _, sel := range candidates {
		if sel == "" {
			continue
		}
		if t := CleanText(root.Find(sel).First().Text()); t != "" {
			return t
		}
	}
	return ""
}

// FirstAttr is FirstText for an attribute value.
func FirstAttr(root *goquery.Selection, attr string, candidates ...string) (string, bool) {
	for _, sel := range candidates {
		if sel == "" {
			continue
		}
		if v, ok := root.Find(sel).First().Attr(attr); ok && v != "" {
			return v, true
		}
	}
	return "", false
}
