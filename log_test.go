package rom

import (
	"testing"

	"github.com/go-logr/zapr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pdswan/rom/att"
)

func TestNewLogger(t *testing.T) {
	l, err := NewLogger("", false)
	require.NoError(t, err)
	assert.Nil(t, l.GetSink())

	l, err = NewLogger("debug", true)
	require.NoError(t, err)
	assert.True(t, l.V(1).Enabled())

	l, err = NewLogger("info", false)
	require.NoError(t, err)
	assert.True(t, l.Enabled())
	assert.False(t, l.V(1).Enabled())

	_, err = NewLogger("loud", false)
	assert.Error(t, err)
}

func TestOperatorLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	d := suppliers(WithLogger(zapr.NewLogger(zap.New(core))))

	_, err := d.Restrict(att.Where("City", "Paris"))
	require.NoError(t, err)
	d.Project("SNO").Join(orders())

	entries := logs.FilterMessage("restrict").All()
	require.Len(t, entries, 1)
	assert.Equal(t, `{City == "Paris"}`, entries[0].ContextMap()["criteria"])
	assert.Equal(t, 1, logs.FilterMessage("project").Len())
	assert.Equal(t, 1, logs.FilterMessage("join").Len())

	// operators are silent above debug
	core, logs = observer.New(zap.InfoLevel)
	d = suppliers(WithLogger(zapr.NewLogger(zap.New(core))))
	d.Project("SNO")
	assert.Equal(t, 0, logs.Len())
}
