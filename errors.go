package highlight

import "errors"

// Errors returned while setting up charts and transforms. Queries never
// fail; an unmatched pointer simply yields no highlight.
var (
	// ErrEmptyRange is returned when an axis range is zero, negative or not finite.
	ErrEmptyRange = errors.New("highlight: empty axis range")

	// ErrEmptyViewport is returned when the content rectangle has no area.
	ErrEmptyViewport = errors.New("highlight: empty viewport")

	// ErrSingularTransform is returned for a transform that cannot be inverted.
	ErrSingularTransform = errors.New("highlight: transform is not invertible")

	// ErrNilTransformer is returned when a chart is built without a transformer for an axis.
	ErrNilTransformer = errors.New("highlight: missing axis transformer")
)
