package resource

import (
	"github.com/marcelsud/webhookconfig-repository/bitbucket"
	"github.com/stretchr/testify/mock"
)

// MatchHook creates a custom matcher for hook arguments in mocks
func MatchHook(matcher func(bitbucket.Hook) bool) interface{} {
	return mock.MatchedBy(matcher)
}
