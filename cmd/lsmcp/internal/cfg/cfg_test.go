package cfg

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetBaseFlags(t *testing.T) {
	lookup := func(fs *flag.FlagSet, name string) bool {
		return fs.Lookup(name) != nil
	}
	t.Run("default flags include auth", func(t *testing.T) {
		var fs flag.FlagSet
		SetBaseFlags(&fs, DefaultFlags)
		assert.True(t, lookup(&fs, "url"))
		assert.True(t, lookup(&fs, "username"))
		assert.True(t, lookup(&fs, "password"))
		assert.True(t, lookup(&fs, "api-config"))
		assert.True(t, lookup(&fs, "trace"))
	})
	t.Run("omit all", func(t *testing.T) {
		var fs flag.FlagSet
		SetBaseFlags(&fs, OmitAll)
		assert.False(t, lookup(&fs, "url"))
		assert.False(t, lookup(&fs, "api-config"))
		assert.False(t, lookup(&fs, "limiter-boost"))
		// common flags are always set.
		assert.True(t, lookup(&fs, "log"))
		assert.True(t, lookup(&fs, "v"))
	})
}

func TestCheckAuth(t *testing.T) {
	t.Cleanup(func() {
		Endpoint, Username, Password = "", "", ""
	})
	Endpoint, Username, Password = "", "", ""
	assert.ErrorIs(t, CheckAuth(), ErrNoAuth)

	Endpoint = "https://example.com/index.php/admin/remotecontrol"
	assert.ErrorIs(t, CheckAuth(), ErrNoAuth)

	Username, Password = "admin", "hunter2"
	assert.NoError(t, CheckAuth())
}
