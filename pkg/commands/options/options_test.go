package options

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/weekend/pkg/activity"
	"tableflip.dev/weekend/pkg/app"
)

func TestParseID(t *testing.T) {
	o := &IDOptions{}
	require.NoError(t, o.ParseID("#12"))
	assert.Equal(t, 12, o.ID)

	for _, bad := range []string{"", "abc", "0", "-3"} {
		assert.Error(t, o.ParseID(bad), bad)
	}
}

func TestHandleErrorJSON(t *testing.T) {
	var buf bytes.Buffer
	saved := color.Output
	color.Output = &buf
	defer func() { color.Output = saved }()

	o := &OutputOptions{JSON: true}
	err := fmt.Errorf("schedule: %w", app.ErrNotSelected)
	require.NoError(t, o.HandleError(err))
	assert.JSONEq(t, fmt.Sprintf(`{"error":%q,"reason":"NotSelected"}`, err.Error()), buf.String())

	o.JSON = false
	assert.ErrorIs(t, o.HandleError(err), app.ErrNotSelected)
	assert.NoError(t, o.HandleError(nil))

	buf.Reset()
	o.JSON = true
	require.NoError(t, o.HandleError(errors.New("boom")))
	assert.JSONEq(t, `{"error":"boom"}`, buf.String())
}

func TestCustomActivity(t *testing.T) {
	o := &CustomOptions{}
	a, err := o.Activity()
	require.NoError(t, err)
	assert.Nil(t, a)

	o = &CustomOptions{Name: "Kites", Category: "Social", Location: "Beach"}
	a, err = o.Activity()
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, activity.CategorySocial, a.Category)
	assert.Equal(t, "Beach", a.Location)

	o.Category = "all"
	a, err = o.Activity()
	require.NoError(t, err)
	assert.Equal(t, activity.Category(""), a.Category)

	o.Category = "underwater"
	_, err = o.Activity()
	assert.Error(t, err)
}
