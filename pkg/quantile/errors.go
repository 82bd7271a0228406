package quantile

import "fmt"

// PrecisionUnavailableError reports an exact order statistic requested
// where only the approximate path is affordable or configured. It is never
// converted into a silent approximation.
type PrecisionUnavailableError struct {
	Op    string
	Rows  int
	Limit int
}

func (e *PrecisionUnavailableError) Error() string {
	return fmt.Sprintf("%s: exact quantile over %d rows exceeds the configured limit of %d; request ModeApproximate or raise MaxExactRows", e.Op, e.Rows, e.Limit)
}
