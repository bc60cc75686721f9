// Package urgency scores hackathon deadlines into alert levels.
//
// Hours remaining map onto five bands: CRITICAL (3h or less), HIGH (12h),
// MEDIUM (48h), LOW (7 days), and IGNORE beyond that. Each band carries a
// re-notification interval so alerts repeat faster as a deadline closes in.
// A priority score orders the results, dominated by deadline proximity
// with prize money as a tiebreaker.
package urgency
