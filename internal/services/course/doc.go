// Package course is the data-access service the views talk to.
//
// It turns each logical operation into one backend call, reports the outcome
// to the message log, and applies a uniform failure policy: every transport or
// status failure is logged once, tagged with the operation name, and replaced
// by a fallback value. Under PolicySwallow callers never see the error; under
// PolicyReturn they also receive an *OpError.
package course
