package router

import (
	"context"
	"regexp"

	"smart-task-scheduler/pkg/log"
)

// Router is the interface for command classification
type Router interface {
	Classify(ctx context.Context, message string) RouterOutput
}

type rule struct {
	name    string
	intent  Intent
	matches func(text string) bool
}

// RuleRouter classifies commands with an ordered rule table; the first match wins.
type RuleRouter struct {
	l     log.Logger
	rules []rule
}

// Ensure RuleRouter implements Router interface
var _ Router = (*RuleRouter)(nil)

// New creates a new RuleRouter
func New(l log.Logger) *RuleRouter {
	return &RuleRouter{
		l:     l,
		rules: defaultRules(),
	}
}

func matchAny(patterns ...*regexp.Regexp) func(string) bool {
	return func(text string) bool {
		for _, p := range patterns {
			if p.MatchString(text) {
				return true
			}
		}
		return false
	}
}

func matchAll(patterns ...*regexp.Regexp) func(string) bool {
	return func(text string) bool {
		for _, p := range patterns {
			if !p.MatchString(text) {
				return false
			}
		}
		return true
	}
}
