package analyze

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/dealscout"
)

// Fingerprint returns a stable hash of the result's JSON encoding.
// Identical results always produce identical fingerprints.
func Fingerprint(result *dealscout.AnalysisResult) string {
	data, err := json.Marshal(result)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}
