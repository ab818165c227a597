package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeActions returns canned native results. ok=false models the native
// layer returning NULL.
type fakeActions struct {
	typeResult  string
	typeOK      bool
	namedResult string
	namedOK     bool

	lastElementID string
	lastArg       string
}

func (f *fakeActions) TypeAction(elementID, text string) (string, bool) {
	f.lastElementID = elementID
	f.lastArg = text
	return f.typeResult, f.typeOK
}

func (f *fakeActions) NamedAction(elementID, actionName string) (string, bool) {
	f.lastElementID = elementID
	f.lastArg = actionName
	return f.namedResult, f.namedOK
}

func TestTypeText_ReturnsNativeResultVerbatim(t *testing.T) {
	fake := &fakeActions{typeResult: "typed 5 characters", typeOK: true}
	d := NewDispatcher(fake, nil)

	result, err := d.TypeText("el-42", "hello")
	require.NoError(t, err)
	assert.Equal(t, "typed 5 characters", result)
	assert.Equal(t, "el-42", fake.lastElementID)
	assert.Equal(t, "hello", fake.lastArg)
}

func TestTypeText_NullResult(t *testing.T) {
	d := NewDispatcher(&fakeActions{}, nil)
	_, err := d.TypeText("el-42", "hello")
	assert.ErrorIs(t, err, ErrActionFailed)
}

func TestTypeText_RequiresElementID(t *testing.T) {
	d := NewDispatcher(&fakeActions{typeOK: true}, nil)
	_, err := d.TypeText("", "hello")
	assert.Error(t, err)
}

func TestInvokeNamed_Success(t *testing.T) {
	fake := &fakeActions{namedResult: "action success", namedOK: true}
	d := NewDispatcher(fake, nil)

	err := d.InvokeNamed("el-42", "AXPress")
	require.NoError(t, err)
	assert.Equal(t, "AXPress", fake.lastArg)
}

func TestInvokeNamed_Rejected(t *testing.T) {
	fake := &fakeActions{namedResult: "action failed: not supported", namedOK: true}
	d := NewDispatcher(fake, nil)

	err := d.InvokeNamed("el-42", "AXPress")
	require.Error(t, err)

	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, "action failed: not supported", rejection.Message)
	assert.Equal(t, "action failed: not supported", err.Error())
}

func TestInvokeNamed_NullResult(t *testing.T) {
	d := NewDispatcher(&fakeActions{}, nil)
	err := d.InvokeNamed("el-42", "AXPress")
	assert.ErrorIs(t, err, ErrActionFailed)
}

func TestInvokeNamed_RequiresArguments(t *testing.T) {
	d := NewDispatcher(&fakeActions{namedOK: true}, nil)
	assert.Error(t, d.InvokeNamed("", "AXPress"))
	assert.Error(t, d.InvokeNamed("el-42", ""))
}

func TestParseActionResult(t *testing.T) {
	tests := []struct {
		result string
		ok     bool
	}{
		{"action success", true},
		{"success", true},
		{"typing action success for el-1", true},
		{"action failed: not supported", false},
		{"", false},
		{"SUCCESS", false}, // marker is lowercase in the native layer
	}
	for _, tt := range tests {
		err := parseActionResult(tt.result)
		if tt.ok {
			assert.NoError(t, err, "result %q", tt.result)
		} else {
			assert.Error(t, err, "result %q", tt.result)
		}
	}
}
