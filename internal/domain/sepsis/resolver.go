package sepsis

import (
	"sort"

	"github.com/rs/zerolog"
)

// Resolve folds an admission's sepsis candidates into its single label. The
// infection flag is set when any candidate exists and the sepsis flag when
// any candidate carries a positive dysfunction verdict. Onset fields come
// from the sepsis-positive candidate with the earliest onset timestamp; when
// several share that timestamp the first in candidate order wins and the tie
// is logged. An admission with no candidates gets both flags clear and nil
// onset fields.
func Resolve(hadmID int64, candidates []SepsisCandidate, log zerolog.Logger) Label {
	label := Label{HadmID: hadmID}
	if len(candidates) == 0 {
		return label
	}
	label.IsInfection = true

	var positive []SepsisCandidate
	for _, c := range candidates {
		if c.IsSepsis() {
			positive = append(positive, c)
		}
	}
	if len(positive) == 0 {
		return label
	}
	label.IsSepsis = true

	sort.SliceStable(positive, func(i, j int) bool {
		return positive[i].OnsetTime.Before(positive[j].OnsetTime)
	})
	onset := positive[0]
	if len(positive) > 1 && positive[1].OnsetTime.Equal(onset.OnsetTime) {
		log.Warn().
			Int64("hadm_id", hadmID).
			Time("onset_datetime", onset.OnsetTime).
			Msg("ambiguous sepsis onset: multiple candidates share the earliest timestamp")
	}

	label.OnsetTime = &onset.OnsetTime
	label.OnsetDay = &onset.OnsetDay
	label.CultureIndex = &onset.CultureIndex
	label.AntibioticIndex = &onset.AntibioticIndex
	label.SOFAEarlierIndex = onset.Verdict.EarlierIndex
	label.SOFALaterIndex = onset.Verdict.LaterIndex
	return label
}
