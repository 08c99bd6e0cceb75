package assets

import (
	"strings"

	"github.com/maxdeal/storefront/internal/catalog"
)

// Stock photography host and the query marker that signals an image has
// already been through studio optimization. Images from the stock host
// without the marker tend to have inconsistent backgrounds and crops but
// acceptable resolution, format, and reachability.
const (
	stockHostMarker = "unsplash.com"
	qualityMarker   = "q=85"
)

// Metadata reported for assets as scanned, and after a successful
// studio regeneration.
const (
	scanResolution = "1200x1200px"
	scanSize       = "142KB"
	scanFormat     = "JPG"

	upgradedResolution = "1200x1200px"
	upgradedSize       = "118KB"
	upgradedFormat     = "WEBP"
)

// Scan classifies every catalog image against the fixed rule set and
// returns one record per item, in catalog order. It is a pure function:
// no network calls are made during a scan.
func Scan(items []catalog.Item) []*Record {
	records := make([]*Record, 0, len(items))
	for _, item := range items {
		records = append(records, scanItem(item))
	}
	return records
}

func scanItem(item catalog.Item) *Record {
	needsFix := needsStudioEnhancement(item.Image)

	checks := make([]Check, 0, len(CheckKinds))
	for _, kind := range CheckKinds {
		status := CheckPass
		if needsFix && (kind == CheckBackgroundColor || kind == CheckAspectRatio) {
			status = CheckFail
		}
		checks = append(checks, Check{Kind: kind, Label: kind.Label(), Status: status})
	}

	rec := &Record{
		ID:           item.ID,
		Name:         item.Name,
		Category:     item.Category,
		OriginalURL:  item.Image,
		Checks:       checks,
		Resolution:   scanResolution,
		SizeEstimate: scanSize,
		Format:       scanFormat,
	}

	if needsFix {
		rec.Status = StatusPending
	} else {
		rec.Status = StatusOptimized
		rec.ResolvedURL = item.Image
	}

	return rec
}

// needsStudioEnhancement implements the flagging heuristic: a stock-photo
// URL lacking the quality marker is presumed to need regeneration.
func needsStudioEnhancement(imageURL string) bool {
	return strings.Contains(imageURL, stockHostMarker) && !strings.Contains(imageURL, qualityMarker)
}
