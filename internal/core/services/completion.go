package services

import (
	"math"

	"github.com/lawkit-dev/lawkit-cli/internal/core/domain"
)

// Completion scoring is a pure projection of wizard state onto a 0-100
// scale, recomputed from scratch after every mutation.
//
// Privacy weights: service info 20, selection 20, detail inputs 60.
// Within one detail record: purpose 50, collected items 40, retention 10.
// Terms weights: service info 25, selection 25, detail inputs 50 with a
// binary enabled check worth the full 50 per feature.

// PolicyCompletion returns the privacy wizard completion rate.
func PolicyCompletion(info domain.ServiceInfo, selected []string, details map[string]domain.DetailInput) int {
	completed := float64(info.RequiredFilled()) / 3.0 * 20

	if len(selected) > 0 {
		completed += 20
	}

	if len(selected) > 0 {
		progress := 0
		for _, id := range selected {
			in, ok := details[id]
			if !ok {
				continue
			}
			if in.Purpose != "" {
				progress += 50
			}
			if len(in.Items) > 0 || in.CustomItems != "" {
				progress += 40
			}
			if in.RetentionPeriod != "" {
				progress += 10
			}
		}
		completed += float64(progress) / float64(len(selected)*100) * 60
	}

	return int(math.Round(completed))
}

// TermsCompletion returns the terms wizard completion rate.
func TermsCompletion(info domain.TermsServiceInfo, selected []string, inputs map[string]domain.TermsFeatureInput) int {
	completed := float64(info.RequiredFilled()) / 3.0 * 25

	if len(selected) > 0 {
		completed += 25
	}

	if len(selected) > 0 {
		progress := 0
		for _, id := range selected {
			if in, ok := inputs[id]; ok && in.Enabled {
				progress += 50
			}
		}
		completed += float64(progress) / float64(len(selected)*50) * 50
	}

	return int(math.Round(completed))
}
