// Package niche holds the built-in content niche catalog and the set of
// supported search regions. Each niche maps to a curated keyword list
// used to seed searches.
package niche

import "sort"

// Keywords maps every built-in niche to its curated search phrases.
var Keywords = map[string][]string{
	"Motivation & Self Improvement": {
		"motivation shorts",
		"success motivation story",
		"self improvement tips",
		"discipline motivation",
		"morning routine motivation",
		"mindset shift",
	},
	"Wealth & Money Stories": {
		"wealth stories",
		"money lessons shorts",
		"rich vs poor mindset",
		"finance motivation",
		"millionaire habits",
		"passive income ideas",
	},
	"Scary / Dark Stories": {
		"scary story shorts",
		"true horror story",
		"dark stories real",
		"creepy real stories",
		"paranormal shorts",
		"horror facts",
	},
	"Reddit / Drama Stories": {
		"reddit aita story",
		"reddit relationship story",
		"reddit drama shorts",
		"reddit storytime",
		"reddit revenge story",
		"reddit update",
	},
	"Facts & Mind-Blowing Info": {
		"mind blowing facts",
		"crazy facts shorts",
		"top 10 facts",
		"did you know facts",
		"psychology facts",
		"interesting facts",
	},
	"Space / Science Stories": {
		"space facts shorts",
		"science facts shorts",
		"cosmic stories",
		"universe facts",
		"astronomy shorts",
		"physics explained",
	},
	"Health & Productivity": {
		"health tips shorts",
		"productivity hacks",
		"habit building shorts",
		"sleep tips shorts",
		"workout motivation",
		"nutrition facts",
	},
	"History & Historical Facts": {
		"history facts shorts",
		"historical events",
		"ancient history",
		"war stories shorts",
		"historical figures",
	},
	"Gaming & Tech": {
		"gaming shorts",
		"tech facts",
		"game tips shorts",
		"tech news shorts",
		"gaming moments",
	},
	"Animals & Nature": {
		"animal facts shorts",
		"nature documentary shorts",
		"wildlife facts",
		"ocean facts",
		"pet videos shorts",
	},
}

// Regions lists the supported search region codes.
var Regions = []string{"US", "GB", "CA", "AU", "IN", "DE", "FR", "BR", "JP", "MX"}

// Names returns the niche names in stable sorted order.
func Names() []string {
	names := make([]string, 0, len(Keywords))
	for name := range Keywords {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// KeywordsFor returns a copy of the keyword list for a niche, or nil if
// the niche is unknown. The copy keeps callers from mutating the
// catalog.
func KeywordsFor(name string) []string {
	kws, ok := Keywords[name]
	if !ok {
		return nil
	}
	out := make([]string, len(kws))
	copy(out, kws)
	return out
}

// IsSupportedRegion reports whether code is one of the supported
// search regions.
func IsSupportedRegion(code string) bool {
	for _, r := range Regions {
		if r == code {
			return true
		}
	}
	return false
}
