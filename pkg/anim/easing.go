// Package anim runs groups of tweens one group at a time on a single goroutine.
package anim

import (
	"fmt"
	"math"
	"strings"
)

// EasingFunc maps linear progress in [0, 1] to eased progress.
type EasingFunc func(t float64) float64

func Linear(t float64) float64 {
	return t
}

// Decelerate starts fast and slows down towards the end.
func Decelerate(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// Accelerate starts slow and speeds up towards the end.
func Accelerate(t float64) float64 {
	return t * t
}

func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

var easings = map[string]EasingFunc{
	"linear":      Linear,
	"decelerate":  Decelerate,
	"accelerate":  Accelerate,
	"ease-in-out": EaseInOutCubic,
}

// EasingByName resolves one of: linear, decelerate, accelerate, ease-in-out.
func EasingByName(name string) (EasingFunc, error) {
	if name == "" {
		return Decelerate, nil
	}
	if f, ok := easings[strings.ToLower(name)]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("unknown easing %q", name)
}

func clamp01(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}
