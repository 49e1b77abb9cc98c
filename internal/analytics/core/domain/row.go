package domain

import (
	"encoding/json"
	"strings"
)

// Known platforms offered by the dashboard selector. Rows may carry any
// platform string; these are only the selector defaults.
const (
	PlatformAll       = "all"
	PlatformInstagram = "Instagram"
	PlatformLinkedIn  = "LinkedIn"
	PlatformYouTube   = "YouTube"
	PlatformX         = "X"
)

var KnownPlatforms = []string{PlatformInstagram, PlatformLinkedIn, PlatformYouTube, PlatformX}

// Row is one spreadsheet line: one platform's metrics on one date.
type Row struct {
	Date     string
	Platform string

	Followers   int64
	Impressions int64
	Reach       int64
	Posts       int64
	Likes       int64
	Comments    int64
	Shares      int64

	Engagement float64 // percent
	Growth     float64 // percent

	// Extra holds non allow-listed columns keyed by lower-cased header.
	Extra map[string]string
}

// JSON field names of the typed columns.
const (
	fieldDate        = "date"
	fieldPlatform    = "platform"
	fieldFollowers   = "followers"
	fieldImpressions = "impressions"
	fieldReach       = "reach"
	fieldPosts       = "posts"
	fieldLikes       = "likes"
	fieldComments    = "comments"
	fieldShares      = "shares"
	fieldEngagement  = "engagement"
	fieldGrowth      = "growth"
)

func isTypedField(key string) bool {
	switch key {
	case fieldDate, fieldPlatform,
		fieldFollowers, fieldImpressions, fieldReach, fieldPosts,
		fieldLikes, fieldComments, fieldShares,
		fieldEngagement, fieldGrowth:
		return true
	}
	return false
}

func (r *Row) intField(key string) *int64 {
	switch key {
	case fieldFollowers:
		return &r.Followers
	case fieldImpressions:
		return &r.Impressions
	case fieldReach:
		return &r.Reach
	case fieldPosts:
		return &r.Posts
	case fieldLikes:
		return &r.Likes
	case fieldComments:
		return &r.Comments
	case fieldShares:
		return &r.Shares
	}
	return nil
}

func (r *Row) percentField(key string) *float64 {
	switch key {
	case fieldEngagement:
		return &r.Engagement
	case fieldGrowth:
		return &r.Growth
	}
	return nil
}

// MarshalJSON flattens Extra into the row object next to the typed fields.
func (r Row) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, 11+len(r.Extra))
	for k, v := range r.Extra {
		if isTypedField(k) {
			continue
		}
		out[k] = v
	}
	out[fieldDate] = r.Date
	out[fieldPlatform] = r.Platform
	out[fieldFollowers] = r.Followers
	out[fieldImpressions] = r.Impressions
	out[fieldReach] = r.Reach
	out[fieldPosts] = r.Posts
	out[fieldLikes] = r.Likes
	out[fieldComments] = r.Comments
	out[fieldShares] = r.Shares
	out[fieldEngagement] = r.Engagement
	out[fieldGrowth] = r.Growth
	return json.Marshal(out)
}

func (r *Row) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*r = Row{}
	for k, v := range raw {
		switch {
		case k == fieldDate:
			if err := json.Unmarshal(v, &r.Date); err != nil {
				return err
			}
		case k == fieldPlatform:
			if err := json.Unmarshal(v, &r.Platform); err != nil {
				return err
			}
		case r.intField(k) != nil:
			if err := json.Unmarshal(v, r.intField(k)); err != nil {
				return err
			}
		case r.percentField(k) != nil:
			if err := json.Unmarshal(v, r.percentField(k)); err != nil {
				return err
			}
		default:
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				// non-string extras are not part of the row contract
				continue
			}
			if r.Extra == nil {
				r.Extra = map[string]string{}
			}
			r.Extra[k] = s
		}
	}
	return nil
}

// PlatformContains reports whether the platform name contains term, ignoring case.
func (r Row) PlatformContains(term string) bool {
	return strings.Contains(strings.ToLower(r.Platform), strings.ToLower(term))
}
