package invoice

import (
	"fmt"
	"strconv"
	"strings"
)

const numberPrefix = "NF-"

// NextNumber allocates the next sequential display number from the most
// recently created one for a business. Cancellations never release a number.
// An unparseable or empty predecessor restarts the sequence at NF-0001.
func NextNumber(last string) string {
	seq := 0
	if suffix, ok := strings.CutPrefix(last, numberPrefix); ok {
		if n, err := strconv.Atoi(suffix); err == nil && n > 0 {
			seq = n
		}
	}
	return fmt.Sprintf("%s%04d", numberPrefix, seq+1)
}
