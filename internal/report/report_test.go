package report

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/zendesk/snowcrash/internal/sourcemap"
)

func TestWarnPreservesDocumentOrder(t *testing.T) {
	r := New()
	r.Warn(FormattingWarning, "first", sourcemap.New(10, 1))
	r.Warn(RedefinitionWarning, "second", sourcemap.New(20, 1))

	assert.Equal(t, 2, len(r.Warnings))
	assert.Equal(t, "first", r.Warnings[0].Message)
	assert.Equal(t, "second", r.Warnings[1].Message)
}

func TestFailOnlyRecordsFirstError(t *testing.T) {
	r := New()
	r.Fail(BusinessError, "first failure", sourcemap.New(0, 1))
	r.Fail(BusinessError, "second failure", sourcemap.New(5, 1))

	assert.True(t, r.HasError())
	assert.Equal(t, "first failure", r.Error.Message)
}

func TestErrorCodeDefaultsToOK(t *testing.T) {
	r := New()
	assert.Equal(t, OK, r.ErrorCode())

	r.Fail(URIWarning, "bad uri", sourcemap.New(0, 1))
	assert.Equal(t, URIWarning, r.ErrorCode())
}

func TestCodeStringNames(t *testing.T) {
	assert.Equal(t, "RedefinitionWarning", RedefinitionWarning.String())
	assert.Equal(t, "BusinessError", BusinessError.String())
	assert.Equal(t, "OK", OK.String())
}
