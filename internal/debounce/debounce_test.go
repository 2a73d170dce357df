package debounce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFire_OnlyLatestTicket(t *testing.T) {
	d := New(time.Second)
	first := d.Schedule()
	second := d.Schedule()
	third := d.Schedule()

	assert.False(t, d.Fire(first))
	assert.False(t, d.Fire(second))
	assert.True(t, d.Pending())
	assert.True(t, d.Fire(third))
	assert.False(t, d.Pending())
}

func TestFire_OnlyOnce(t *testing.T) {
	d := New(time.Second)
	tk := d.Schedule()
	assert.True(t, d.Fire(tk))
	assert.False(t, d.Fire(tk))
}

func TestCancel(t *testing.T) {
	d := New(time.Second)
	tk := d.Schedule()
	d.Cancel()
	assert.False(t, d.Pending())
	assert.False(t, d.Fire(tk))

	next := d.Schedule()
	assert.NotEqual(t, tk, next)
	assert.True(t, d.Fire(next))
}

func TestFire_Unscheduled(t *testing.T) {
	d := New(time.Second)
	assert.False(t, d.Fire(0))
}

func TestSetDelay(t *testing.T) {
	d := New(time.Second)
	assert.Equal(t, time.Second, d.Delay())
	d.SetDelay(250 * time.Millisecond)
	assert.Equal(t, 250*time.Millisecond, d.Delay())
}
