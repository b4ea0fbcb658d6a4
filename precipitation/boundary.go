package precipitation

// AdjustBoundaryProbability carries the simulated change in a boundary
// probability (such as the dry-day probability P0 of a hurdle model) over
// to the observed one:
//
//	P_obs_future = P_obs_hist + (P_cm_future - P_cm_hist)
//
// clamped to [0,1]. The additive delta keeps the projected change in
// dry-day frequency intact even when the observed historical probability is
// zero, where a ratio-based carry-over would pin the future probability to
// zero as well.
func AdjustBoundaryProbability(pObsHist, pCmHist, pCmFuture float64) float64 {
	p := pObsHist + pCmFuture - pCmHist
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
