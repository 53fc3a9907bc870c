package util

import "testing"

func TestShouldUseColors(t *testing.T) {
	// clear the variables the checks consult so earlier env doesn't leak in
	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "")
	t.Setenv("SCOUT_FORCE_COLORS", "")

	t.Run("NO_COLOR wins", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		t.Setenv("FORCE_COLOR", "1")
		if ShouldUseColors() {
			t.Error("NO_COLOR should disable colours")
		}
	})

	t.Run("FORCE_COLOR enables", func(t *testing.T) {
		t.Setenv("FORCE_COLOR", "1")
		if !ShouldUseColors() {
			t.Error("FORCE_COLOR=1 should enable colours")
		}
	})

	t.Run("FORCE_COLOR zero disables", func(t *testing.T) {
		t.Setenv("FORCE_COLOR", "0")
		if ShouldUseColors() {
			t.Error("FORCE_COLOR=0 should disable colours")
		}
	})

	t.Run("SCOUT_FORCE_COLORS", func(t *testing.T) {
		t.Setenv("SCOUT_FORCE_COLORS", "true")
		if !ShouldUseColors() {
			t.Error("SCOUT_FORCE_COLORS=true should enable colours")
		}

		t.Setenv("SCOUT_FORCE_COLORS", "false")
		if ShouldUseColors() {
			t.Error("SCOUT_FORCE_COLORS=false should disable colours")
		}
	})
}
