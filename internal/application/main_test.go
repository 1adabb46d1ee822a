package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func mockAnyContext() interface{} {
	return mock.MatchedBy(func(context.Context) bool { return true })
}
