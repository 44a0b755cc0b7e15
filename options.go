package fuzzyindex

import (
	"fmt"

	"golang.org/x/text/language"
)

const (
	defaultGramLow  = 4
	defaultGramHigh = 6
)

type config struct {
	gramLow  int
	gramHigh int
	lang     language.Tag
}

func defaultConfig() config {
	return config{
		gramLow:  defaultGramLow,
		gramHigh: defaultGramHigh,
		lang:     language.Und,
	}
}

func (c config) validate() error {
	if c.gramLow < 1 || c.gramHigh > segmentCapacity {
		return fmt.Errorf("%w: gram sizes %d..%d outside [1,%d]", ErrInvalidArgument, c.gramLow, c.gramHigh, segmentCapacity)
	}
	if c.gramLow > c.gramHigh {
		return fmt.Errorf("%w: gram size lower bound %d exceeds upper bound %d", ErrInvalidArgument, c.gramLow, c.gramHigh)
	}
	return nil
}

// Option configures an Index at construction time.
type Option func(*config)

// WithGramSizes sets the inclusive range of gram lengths maintained by the
// index. Both bounds must lie in [1, 8] with low <= high; the defaults are
// 4 and 6. Larger grams are more selective, smaller grams catch sloppier
// matches at a higher scan cost.
func WithGramSizes(low, high int) Option {
	return func(c *config) {
		c.gramLow = low
		c.gramHigh = high
	}
}

// WithLanguage sets the language whose casing rules are applied while
// normalizing, e.g. language.Turkish maps "I" to dotless ı. The default is
// language.Und (language-neutral lowercasing).
func WithLanguage(tag language.Tag) Option {
	return func(c *config) {
		c.lang = tag
	}
}
