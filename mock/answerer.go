// Package mock provides test doubles for proofpad interfaces using
// function fields.
package mock

import (
	"context"

	"proofpad"
)

// Interface compliance check.
var _ proofpad.Answerer = (*Answerer)(nil)

// Answerer is a test double for proofpad.Answerer.
// Set AnswerFn before calling Answer.
type Answerer struct {
	AnswerFn func(ctx context.Context, req proofpad.AnswerRequest) (proofpad.AnswerResponse, error)
}

// Answer delegates to AnswerFn.
func (a *Answerer) Answer(ctx context.Context, req proofpad.AnswerRequest) (proofpad.AnswerResponse, error) {
	return a.AnswerFn(ctx, req)
}
