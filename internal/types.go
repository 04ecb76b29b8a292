package internal

import "fmt"

// Direction identifies one translation direction of the local backend.
type Direction string

const (
	DirectionEnZh Direction = "en2zh"
	DirectionZhEn Direction = "zh2en"
)

// ParseDirection accepts the wire form of a direction ("en2zh", "zh2en").
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DirectionEnZh, DirectionZhEn:
		return Direction(s), nil
	}
	return "", fmt.Errorf("unknown direction %q (want en2zh or zh2en)", s)
}

func (d Direction) String() string {
	return string(d)
}

// TargetISO returns the ISO 639-1 code of the direction's output language.
func (d Direction) TargetISO() string {
	if d == DirectionZhEn {
		return "en"
	}
	return "zh"
}

// SourceISO returns the ISO 639-1 code of the direction's input language.
func (d Direction) SourceISO() string {
	if d == DirectionZhEn {
		return "zh"
	}
	return "en"
}

// Result is the outcome of one translate call. Exactly one of Text or Err
// is meaningful: a failed call carries an empty Text and a human-readable
// error message, never partial output.
type Result struct {
	Text string `json:"text"`
	Err  string `json:"error,omitempty"`
}

// OK reports whether the call produced a usable (possibly empty) result.
func (r Result) OK() bool {
	return r.Err == ""
}
