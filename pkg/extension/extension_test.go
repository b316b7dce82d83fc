package extension

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestApplyFirstNonNilWins(t *testing.T) {
	got := Apply("base", []*string{nil, nil, strPtr("X"), strPtr("Y")})
	assert.Equal(t, "X", got)
}

func TestApplyNoOverrides(t *testing.T) {
	assert.Equal(t, "base", Apply("base", nil))
	assert.Equal(t, "base", Apply("base", []*string{}))
	assert.Equal(t, "base", Apply("base", []*string{nil, nil}))
}

func TestHooksRegistrationOrder(t *testing.T) {
	var hooks Hooks[string, int]

	hooks.Observe(func(entity string, base int) *int { return nil })
	hooks.Observe(func(entity string, base int) *int { v := base * 2; return &v })
	hooks.Observe(func(entity string, base int) *int { v := base * 3; return &v })

	assert.Equal(t, 10, hooks.Resolve("sku-1", 5))
}

func TestHooksEmpty(t *testing.T) {
	var hooks Hooks[string, int]
	assert.Equal(t, 5, hooks.Resolve("sku-1", 5))
}

func TestHooksObserverSeesEntity(t *testing.T) {
	var hooks Hooks[string, int]
	hooks.Observe(func(entity string, base int) *int {
		if entity == "discounted" {
			v := 0
			return &v
		}
		return nil
	})

	assert.Equal(t, 0, hooks.Resolve("discounted", 99))
	assert.Equal(t, 99, hooks.Resolve("regular", 99))
}
