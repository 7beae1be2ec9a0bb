package discovery

import (
	"fmt"
	"math"
	"time"
)

// MaxSignatureWindow is the largest limit getSignaturesForAddress accepts.
const MaxSignatureWindow = 1000

// RetryPolicy controls how the signature window grows between attempts
// and how long the scheduler backs off after an unproductive attempt.
//
//	Window(i) = min(ceil(InitialWindow * WindowGrowth^i), MaxSignatureWindow)
//	Delay(i)  = InitialDelay * DelayGrowth^i
type RetryPolicy struct {
	InitialWindow int
	WindowGrowth  float64
	MaxAttempts   int
	InitialDelay  time.Duration
	DelayGrowth   float64
}

// DefaultRetryPolicy returns the production retry policy.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		InitialWindow: 30,
		WindowGrowth:  1.5,
		MaxAttempts:   5,
		InitialDelay:  50 * time.Millisecond,
		DelayGrowth:   2,
	}
}

// Validate checks that the policy can produce usable windows.
func (p RetryPolicy) Validate() error {
	switch {
	case p.InitialWindow < 1, p.InitialWindow > MaxSignatureWindow:
		return fmt.Errorf("%w: initial window %d", ErrInvalidPolicy, p.InitialWindow)
	case p.WindowGrowth <= 1:
		return fmt.Errorf("%w: window growth %v", ErrInvalidPolicy, p.WindowGrowth)
	case p.MaxAttempts < 1:
		return fmt.Errorf("%w: max attempts %d", ErrInvalidPolicy, p.MaxAttempts)
	case p.InitialDelay < 0:
		return fmt.Errorf("%w: initial delay %s", ErrInvalidPolicy, p.InitialDelay)
	case p.DelayGrowth < 1:
		return fmt.Errorf("%w: delay growth %v", ErrInvalidPolicy, p.DelayGrowth)
	}
	return nil
}

// Window returns the signature window for zero-based attempt i.
func (p RetryPolicy) Window(attempt int) int {
	w := float64(p.InitialWindow) * math.Pow(p.WindowGrowth, float64(attempt))
	// Tolerate float error so exact products (30*1.5^2 = 67.5) are not bumped.
	if w >= MaxSignatureWindow {
		return MaxSignatureWindow
	}
	return int(math.Ceil(w - 1e-9))
}

// Delay returns the wait after failed zero-based attempt i.
func (p RetryPolicy) Delay(attempt int) time.Duration {
	return time.Duration(float64(p.InitialDelay) * math.Pow(p.DelayGrowth, float64(attempt)))
}
