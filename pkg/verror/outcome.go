/*
Copyright © 2026 The OpenWLM Authors
SPDX-License-Identifier: Apache-2.0
*/

package verror

// Outcome is the uniform result of verifying one attribute value.
//
// Message is set only when Code is not OK, and holds the reason the value
// was rejected. Validators that normalize their input (dependency lists,
// output paths, mail points) report the normalized text through Rewritten
// with Replaced set; the caller decides whether to adopt it. A validator
// never mutates the attribute it was handed.
type Outcome struct {
	Code      Code
	Message   string
	Replaced  bool
	Rewritten string
}

// Passed reports whether the value passed verification.
func (o Outcome) Passed() bool {
	return o.Code == OK
}

// Pass is the successful outcome.
func Pass() Outcome {
	return Outcome{Code: OK}
}

// Fail returns a failing outcome with the code's canonical text as message.
func Fail(code Code) Outcome {
	return Outcome{Code: code, Message: code.Text()}
}

// Failf returns a failing outcome with an explicit message.
func Failf(code Code, message string) Outcome {
	return Outcome{Code: code, Message: message}
}

// Rewrite returns a successful outcome carrying a replacement value.
func Rewrite(value string) Outcome {
	return Outcome{Code: OK, Replaced: true, Rewritten: value}
}
