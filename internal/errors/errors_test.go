package errors_test

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	dnderr "github.com/KirkDiggler/dnd-features/internal/errors"
)

func TestWrapPreservesCode(t *testing.T) {
	base := dnderr.Bindingf("feature %s already bound", "hex_warrior").
		WithMeta("feature", "hex_warrior")

	wrapped := dnderr.Wrap(base, "attach failed")

	assert.True(t, dnderr.IsBinding(wrapped))
	assert.Equal(t, "hex_warrior", dnderr.GetMeta(wrapped)["feature"])
	assert.Equal(t, "attach failed: feature hex_warrior already bound", wrapped.Error())
	assert.True(t, stderrors.Is(wrapped, base))
}

func TestWrapForeignError(t *testing.T) {
	wrapped := dnderr.Wrap(stderrors.New("boom"), "lookup")

	assert.Equal(t, dnderr.CodeUnknown, dnderr.GetCode(wrapped))
	assert.Nil(t, dnderr.Wrap(nil, "nothing"))
}

func TestCodeCheckersThroughFmtWrapping(t *testing.T) {
	err := fmt.Errorf("resolve pact boon: %w", dnderr.UnknownOptionf("unknown option %q", "sword"))

	assert.True(t, dnderr.IsUnknownOption(err))
	assert.False(t, dnderr.IsBinding(err))
	assert.Equal(t, dnderr.CodeUnknownOption, dnderr.GetCode(err))
}

func TestWrapWithCode(t *testing.T) {
	err := dnderr.WrapWithCode(stderrors.New("dial tcp"), dnderr.CodeUnavailable, "spell api")

	assert.Equal(t, dnderr.CodeUnavailable, err.Code)
	assert.True(t, dnderr.IsUnimplemented(dnderr.Unimplementedf("%s is descriptive only", "Eldritch Spear")))
	assert.Equal(t, dnderr.CodeUnknown, dnderr.GetCode(stderrors.New("plain")))
	assert.Nil(t, dnderr.GetMeta(stderrors.New("plain")))
}

func TestContextErrorsGetCodes(t *testing.T) {
	canceled := dnderr.Wrap(context.Canceled, "spell sync interrupted")
	assert.Equal(t, dnderr.CodeCanceled, canceled.Code)
	assert.True(t, dnderr.IsCanceled(canceled))
	assert.True(t, stderrors.Is(canceled, context.Canceled))

	expired := fmt.Errorf("fetch: %w", context.DeadlineExceeded)
	assert.Equal(t, dnderr.CodeDeadlineExceeded, dnderr.GetCode(expired))
	assert.True(t, dnderr.IsCanceled(expired))

	assert.False(t, dnderr.IsCanceled(dnderr.NotFound("spell wish not found")))
	assert.False(t, dnderr.IsCanceled(nil))
}
