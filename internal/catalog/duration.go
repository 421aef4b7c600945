package catalog

// DurationDays extracts the leading integer day count from a duration string
// like "7 days". The format guarantees nothing beyond the leading integer, so
// malformed strings parse as 0 days rather than failing; they then fall out of
// every duration bucket and sort first under the duration key.
func DurationDays(s string) int {
	days := 0
	seen := false
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		seen = true
		days = days*10 + int(r-'0')
	}
	if !seen {
		return 0
	}
	return days
}

// matchesDuration checks a day count against a bucket token. The "3-5" and
// "5-7" buckets intentionally overlap at 5 days; both admit it.
func matchesDuration(days int, bucket string) bool {
	switch bucket {
	case "3-5":
		return days >= 3 && days <= 5
	case "5-7":
		return days >= 5 && days <= 7
	case "7+":
		return days >= 7
	default:
		return true
	}
}
