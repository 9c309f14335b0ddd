// Package availability decides which candidate businesses can currently serve a requester.
package availability

import (
	"time"

	"localdrop/internal/domain/entity"
	"localdrop/internal/domain/geo"
	"localdrop/internal/domain/timewindow"
)

// Exclusion names the first predicate a candidate failed.
type Exclusion string

const (
	// Included means the candidate passed every predicate.
	Included Exclusion = ""
	// ExcludedClosed means the business switched itself closed.
	ExcludedClosed Exclusion = "closed"
	// ExcludedOutOfRange means the requester is beyond the business's or the platform's range.
	ExcludedOutOfRange Exclusion = "out_of_range"
	// ExcludedOutsideHours means the business is outside its opening hours or days and passive open is off.
	ExcludedOutsideHours Exclusion = "outside_hours"
)

// Evaluate runs the eligibility pipeline for one candidate and returns the first failing predicate
// together with the exact distance to the requester. Predicates run in order: open flag, distance,
// passive-open override, then opening hours and days.
func Evaluate(business *entity.Business, requester entity.GeoPoint, commonDeliveryRangeMeters float64, now time.Time) (Exclusion, float64) {
	if !business.OpenFlag() {
		return ExcludedClosed, 0
	}

	distance := geo.Distance(business.Location.GeoPoint, requester)
	if commonDeliveryRangeMeters > 0 && distance > commonDeliveryRangeMeters {
		return ExcludedOutOfRange, distance
	}
	if business.DeliveryRangeMeters != nil && distance > *business.DeliveryRangeMeters {
		return ExcludedOutOfRange, distance
	}

	if business.PassiveOpen() {
		return Included, distance
	}

	if !timewindow.Evaluate(now, business.OpeningTime, business.ClosingTime, business.OpeningDays) {
		return ExcludedOutsideHours, distance
	}

	return Included, distance
}

// Resolve filters candidates down to the businesses able to serve requester at now, keeping the
// candidate order, and maps survivors to their public view. The caller range-queries candidates with
// the box built from commonDeliveryRangeMeters; the exact distance check here removes the box's
// corner hits. An empty, non-nil slice means nothing qualifies.
func Resolve(candidates []*entity.Business, requester entity.GeoPoint, commonDeliveryRangeMeters float64, now time.Time) []*entity.BusinessView {
	views := make([]*entity.BusinessView, 0, len(candidates))

	for _, candidate := range candidates {
		if candidate == nil {
			continue
		}

		exclusion, distance := Evaluate(candidate, requester, commonDeliveryRangeMeters, now)
		if exclusion != Included {
			continue
		}

		views = append(views, candidate.View(distance))
	}

	return views
}
