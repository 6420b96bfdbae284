package domain

import (
	"fmt"
	"time"
)

// UnknownSeriesError means the series is not a numeric column of the
// feature matrix.
type UnknownSeriesError struct {
	Series string
}

func (e UnknownSeriesError) Error() string {
	return fmt.Sprintf("no correlation data for series %q", e.Series)
}

type EmptyInputError struct {
	Input string
}

func (e EmptyInputError) Error() string {
	return fmt.Sprintf("%s has no rows", e.Input)
}

// SeriesNotFoundError means the forecast table has no rows for the series.
type SeriesNotFoundError struct {
	Series string
}

func (e SeriesNotFoundError) Error() string {
	return fmt.Sprintf("no forecast rows for series %q", e.Series)
}

type AnchorNotFoundError struct {
	Series string
	Anchor time.Time
}

func (e AnchorNotFoundError) Error() string {
	return fmt.Sprintf("period %s not found in predictions for series %q", e.Anchor.Format(time.DateOnly), e.Series)
}

type ChangeOutOfRangeError struct {
	PctChange float64
	Min       float64
	Max       float64
}

func (e ChangeOutOfRangeError) Error() string {
	return fmt.Sprintf("change of %g%% is outside the allowed range [%g, %g]", e.PctChange, e.Min, e.Max)
}
